package game

import "math/rand"

// TestSim is a headless harness around Game used by tests and the report
// runner: deterministic seeding, declarative state setup, and tick drivers.
// It has no Ebiten dependency.
type TestSim struct {
	Game   *Game
	SimLog *SimLog // the log the Game writes to

	seed    int64
	verbose bool
	pilot   Autopilot
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra     simOptionKind = iota // seed, verbose: applied before the Game exists
	simOptPlacement                      // snake and food layout: applied to the fresh Game
	simOptState                          // score and phase: applied last
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithSnake lays the body out explicitly, head first, facing dir. The
// direction buffer is aligned with dir so the next tick moves straight.
func WithSnake(dir Direction, body ...Position) SimOption {
	return SimOption{simOptPlacement, func(ts *TestSim) {
		ts.Game.Snake.Body = append([]Position(nil), body...)
		ts.Game.Snake.Dir = dir
		ts.Game.Snake.nextDir = dir
	}}
}

// WithFoodAt pins the food to a cell, overriding the seeded respawn.
func WithFoodAt(x, y int) SimOption {
	return SimOption{simOptPlacement, func(ts *TestSim) {
		ts.Game.Food.Pos = Position{X: x, Y: y}
	}}
}

// WithScore sets the current score without replaying the eats behind it.
// Speed is left alone; it recomputes on the next eat.
func WithScore(n int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Game.Score = n
	}}
}

// WithStarted sends the first start intent so the sim begins in playing
// rather than on the ready screen.
func WithStarted() SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Game.StartIntent()
	}}
}

// WithGameOver places the sim on the game-over screen as if a round had
// already been played and lost. No run is recorded and no death cause is
// set; drive a real collision when those matter.
func WithGameOver() SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Game.firstLaunch = false
		ts.Game.ready = false
		ts.Game.paused = false
		ts.Game.over = true
	}}
}

// NewTestSim constructs a harnessed Game from the options in three ordered
// passes:
//  1. Infrastructure (seed, verbose)
//  2. Construct the Game
//  3. Placement (snake body, food)
//  4. State (score, started)
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{seed: 1}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	rng := rand.New(rand.NewSource(ts.seed)) // #nosec G404 -- test harness
	ts.Game = newGame(rng, ts.verbose)
	ts.SimLog = ts.Game.log
	for _, o := range opts {
		if o.kind == simOptPlacement {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the game n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Game.Tick()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate returns
// true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Game.Tick()
		if predicate(ts) {
			return ts.Game.tick
		}
	}
	return -1
}

// RunAutopilot steers with the greedy autopilot before each tick, for up to
// maxTicks or until the round ends. Returns the tick the round ended on, or
// -1 if the snake is still alive at the budget.
func (ts *TestSim) RunAutopilot(maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.pilot.Steer(ts.Game)
		ts.Game.Tick()
		if ts.Game.Over() {
			return ts.Game.tick
		}
	}
	return -1
}

// SendDirection forwards a steering intent to the game.
func (ts *TestSim) SendDirection(d Direction) {
	ts.Game.DirectionIntent(d)
}

// SendStart forwards a start intent.
func (ts *TestSim) SendStart() {
	ts.Game.StartIntent()
}

// SendPauseToggle forwards a pause toggle intent.
func (ts *TestSim) SendPauseToggle() {
	ts.Game.PauseToggleIntent()
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Game.tick
}

// SimSnapshot is a lightweight copy of the observable game state at a tick.
type SimSnapshot struct {
	Tick      int
	Phase     Phase
	Body      []Position
	Dir       Direction
	Food      Position
	Score     int
	HighScore int
	Speed     int
}

// Snapshot captures the current state. The body is copied, so later ticks
// do not mutate it.
func (ts *TestSim) Snapshot() SimSnapshot {
	g := ts.Game
	return SimSnapshot{
		Tick:      g.tick,
		Phase:     g.Phase(),
		Body:      append([]Position(nil), g.Snake.Body...),
		Dir:       g.Snake.Dir,
		Food:      g.Food.Pos,
		Score:     g.Score,
		HighScore: g.HighScore,
		Speed:     g.Speed,
	}
}
