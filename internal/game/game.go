package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase is the coarse game state exposed to renderers and drivers. Exactly
// one phase is reported at a time; the flags behind it are checked in
// priority order ready > game over > paused.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseGameOver
	PhasePaused
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseGameOver:
		return "game_over"
	case PhasePaused:
		return "paused"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// DeathCause classifies how a run ended.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathWall
	DeathSelf
)

func (d DeathCause) String() string {
	switch d {
	case DeathWall:
		return "wall"
	case DeathSelf:
		return "self"
	default:
		return "none"
	}
}

// Game is the engine core: it owns the snake, the food, and the run state,
// and advances them one tick at a time. It is driven from exactly one
// goroutine (the windowed update loop, a headless runner callback, or a
// test), so it carries no locks. Renderers read its state; input delivers
// intents; nothing else mutates it.
type Game struct {
	Snake *Snake
	Food  *Food

	Score     int
	HighScore int // best across runs, in memory only
	Speed     int // ticks per second, derived from Score

	ready  bool
	over   bool
	paused bool
	// firstLaunch makes the very first reset land on the ready screen.
	// Once play has started, every later reset goes straight to playing.
	firstLaunch bool
	cause       DeathCause

	tick  int // counts effective (playing) ticks only
	rng   *rand.Rand
	log   *SimLog
	stats *SessionStats
}

// New creates a game seeded from the clock, sitting on the ready screen.
func New() *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	return newGame(rng, false)
}

// newGame is the seeded constructor shared by New and the test harness.
func newGame(rng *rand.Rand, verbose bool) *Game {
	g := &Game{
		Snake:       NewSnake(),
		Food:        &Food{},
		rng:         rng,
		log:         NewSimLog(verbose),
		stats:       NewSessionStats(),
		firstLaunch: true,
	}
	g.ResetGame()
	return g
}

// ResetGame restores fresh round state: snake back to its starting layout,
// new food, score zeroed, speed back to the initial rate. The high score and
// session stats persist. On first launch the game lands on the ready screen;
// after that a reset goes straight into play.
func (g *Game) ResetGame() {
	g.Snake.Reset()
	g.Food.Respawn(g.rng, g.Snake.Body)
	g.Score = 0
	g.Speed = InitialSpeed
	g.over = false
	g.paused = false
	g.cause = DeathNone
	g.ready = g.firstLaunch
	g.log.Add(g.tick, "state", "reset",
		fmt.Sprintf("ready=%v high=%d", g.ready, g.HighScore), float64(g.HighScore))
	if !g.ready {
		g.stats.BeginRun(g.tick)
	}
}

// StartIntent begins play from the ready screen, or starts a fresh round
// after a game over. In any other state it is ignored.
func (g *Game) StartIntent() {
	switch {
	case g.ready:
		g.ready = false
		g.firstLaunch = false
		g.log.Add(g.tick, "state", "start", "ready → playing", 0)
		g.stats.BeginRun(g.tick)
	case g.over:
		g.log.Add(g.tick, "state", "start", "game_over → reset", 0)
		g.ResetGame()
	}
}

// PauseToggleIntent flips pause during an active round. Ignored on the
// ready and game over screens.
func (g *Game) PauseToggleIntent() {
	if g.ready || g.over {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.log.Add(g.tick, "state", "pause", "playing → paused", 0)
	} else {
		g.log.Add(g.tick, "state", "resume", "paused → playing", 0)
	}
}

// DirectionIntent buffers a steering request. Only a live, unpaused round
// accepts steering; in any other state the intent is dropped silently.
func (g *Game) DirectionIntent(d Direction) {
	if g.ready || g.over || g.paused {
		g.log.AddVerbose(g.tick, "input", "direction_ignored", d.String(), 0)
		return
	}
	g.log.AddVerbose(g.tick, "input", "direction", d.String(), 0)
	g.Snake.ChangeDirection(d)
}

// Tick advances the simulation one step: move, then eat, then collide.
// Outside of active play (ready, paused, or game over) it is a no-op; the
// scheduler may keep firing, but the world does not change.
func (g *Game) Tick() {
	if g.ready || g.over || g.paused {
		return
	}
	g.tick++

	g.Snake.Update()
	head := g.Snake.Head()
	g.log.AddVerbose(g.tick, "move", "step",
		fmt.Sprintf("head=(%d,%d) dir=%s len=%d", head.X, head.Y, g.Snake.Dir, len(g.Snake.Body)),
		float64(len(g.Snake.Body)))

	if head.Equals(g.Food.Pos) {
		g.Score++
		g.Snake.Grow(1)
		g.log.Add(g.tick, "eat", "food",
			fmt.Sprintf("(%d,%d) score=%d", head.X, head.Y, g.Score), float64(g.Score))
		g.Food.Respawn(g.rng, g.Snake.Body)
		g.log.Add(g.tick, "food", "respawn",
			fmt.Sprintf("(%d,%d)", g.Food.Pos.X, g.Food.Pos.Y), 0)
		g.updateSpeed()
	}

	if g.Snake.CheckCollision() {
		g.endRun(head)
	}
}

// updateSpeed recomputes the tick rate from the score: one step faster for
// every five points, capped at MaxSpeed.
func (g *Game) updateSpeed() {
	next := InitialSpeed + g.Score/speedupScore
	if next > MaxSpeed {
		next = MaxSpeed
	}
	if next != g.Speed {
		g.log.Add(g.tick, "speed", "change",
			fmt.Sprintf("%d → %d", g.Speed, next), float64(next))
		g.Speed = next
	}
}

// endRun performs the single transition into game over: classify the death,
// settle the high score, and close out the run record. Further ticks are
// no-ops until a start intent resets the round.
func (g *Game) endRun(head Position) {
	g.over = true
	g.cause = g.classifyDeath(head)
	g.log.Add(g.tick, "collision", g.cause.String(),
		fmt.Sprintf("head=(%d,%d) len=%d", head.X, head.Y, len(g.Snake.Body)), 0)
	if g.Score > g.HighScore {
		g.log.Add(g.tick, "score", "high_score",
			fmt.Sprintf("%d → %d", g.HighScore, g.Score), float64(g.Score))
		g.HighScore = g.Score
	}
	g.stats.EndRun(g.tick, g.Score, len(g.Snake.Body), g.Speed, g.cause)
	g.log.Add(g.tick, "state", "game_over",
		fmt.Sprintf("score=%d high=%d", g.Score, g.HighScore), float64(g.Score))
}

// classifyDeath distinguishes a wall hit from a self hit. The head is out of
// the grid for a wall death; otherwise it landed on its own body.
func (g *Game) classifyDeath(head Position) DeathCause {
	if !inGrid(head) {
		return DeathWall
	}
	return DeathSelf
}

// Phase reports the display state, with the ready screen winning over
// everything, then game over, then pause.
func (g *Game) Phase() Phase {
	switch {
	case g.ready:
		return PhaseReady
	case g.over:
		return PhaseGameOver
	case g.paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Ready reports whether the pre-start screen is showing.
func (g *Game) Ready() bool { return g.ready }

// Over reports whether the current round has ended.
func (g *Game) Over() bool { return g.over }

// Paused reports whether the round is paused.
func (g *Game) Paused() bool { return g.paused }

// DeathCause reports how the last round ended, or DeathNone mid-round.
func (g *Game) DeathCause() DeathCause { return g.cause }

// Log exposes the structured event log.
func (g *Game) Log() *SimLog { return g.log }

// Stats exposes the session run records.
func (g *Game) Stats() *SessionStats { return g.stats }
