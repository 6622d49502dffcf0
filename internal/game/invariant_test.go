package game

import "testing"

// --- Invariant helpers ---

// checkBodyIntegrity verifies the snake is a contiguous chain of in-grid
// cells with no duplicates. After a self-collision the final state briefly
// holds the head on top of a body cell, so the duplicate check is skipped
// once the round is over.
func checkBodyIntegrity(t *testing.T, ts *TestSim) {
	t.Helper()
	g := ts.Game
	body := g.Snake.Body

	if len(body) < initialLength {
		t.Fatalf("T=%d: body shrank to %d cells\n%s",
			ts.CurrentTick(), len(body), ts.SimLog.Summary(g))
	}
	for i := 1; i < len(body); i++ {
		step := abs(body[i].X-body[i-1].X) + abs(body[i].Y-body[i-1].Y)
		if step != 1 {
			t.Fatalf("T=%d: body not contiguous at segment %d: %v → %v\n%s",
				ts.CurrentTick(), i, body[i-1], body[i], ts.SimLog.Summary(g))
		}
	}
	if g.Over() {
		return
	}
	if !inGrid(g.Snake.Head()) {
		t.Fatalf("T=%d: head %v outside grid while still playing\n%s",
			ts.CurrentTick(), g.Snake.Head(), ts.SimLog.Summary(g))
	}
	seen := make(map[Position]bool, len(body))
	for _, cell := range body {
		if seen[cell] {
			t.Fatalf("T=%d: duplicate body cell %v mid-round\n%s",
				ts.CurrentTick(), cell, ts.SimLog.Summary(g))
		}
		seen[cell] = true
	}
}

// checkFoodPlacement verifies the food is inside the grid and off the snake.
// The off-snake guarantee only bends in pathological near-full grids, far
// beyond anything these runs reach.
func checkFoodPlacement(t *testing.T, ts *TestSim) {
	t.Helper()
	g := ts.Game
	if !inGrid(g.Food.Pos) {
		t.Fatalf("T=%d: food %v outside grid", ts.CurrentTick(), g.Food.Pos)
	}
	if g.Snake.Occupies(g.Food.Pos) {
		t.Fatalf("T=%d: food %v on the snake\n%s",
			ts.CurrentTick(), g.Food.Pos, ts.SimLog.Summary(g))
	}
}

// checkLengthScoreCoupled verifies len(body) = initial + score - pending
// growth: every point grows the body by exactly one cell, one tick later.
// Holds within a round; a reset rebases both sides.
func checkLengthScoreCoupled(t *testing.T, ts *TestSim) {
	t.Helper()
	g := ts.Game
	want := initialLength + g.Score - g.Snake.growPending
	if len(g.Snake.Body) != want {
		t.Fatalf("T=%d: len=%d with score=%d growPending=%d, want len=%d\n%s",
			ts.CurrentTick(), len(g.Snake.Body), g.Score, g.Snake.growPending, want,
			ts.SimLog.Summary(g))
	}
}

// checkSpeedLaw verifies the tick rate always equals the score-derived rate
// and stays inside [InitialSpeed, MaxSpeed].
func checkSpeedLaw(t *testing.T, ts *TestSim) {
	t.Helper()
	g := ts.Game
	want := InitialSpeed + g.Score/speedupScore
	if want > MaxSpeed {
		want = MaxSpeed
	}
	if g.Speed != want {
		t.Fatalf("T=%d: speed=%d with score=%d, want %d",
			ts.CurrentTick(), g.Speed, g.Score, want)
	}
	if g.Speed < InitialSpeed || g.Speed > MaxSpeed {
		t.Fatalf("T=%d: speed %d outside [%d, %d]",
			ts.CurrentTick(), g.Speed, InitialSpeed, MaxSpeed)
	}
}

// checkPhaseConsistent verifies the phase, flags, and death cause agree.
func checkPhaseConsistent(t *testing.T, ts *TestSim) {
	t.Helper()
	g := ts.Game
	switch g.Phase() {
	case PhasePlaying:
		if g.Ready() || g.Over() || g.Paused() {
			t.Fatalf("T=%d: playing phase with flags ready=%v over=%v paused=%v",
				ts.CurrentTick(), g.Ready(), g.Over(), g.Paused())
		}
		if g.DeathCause() != DeathNone {
			t.Fatalf("T=%d: death cause %v while playing", ts.CurrentTick(), g.DeathCause())
		}
	case PhaseGameOver:
		if g.DeathCause() == DeathNone {
			t.Fatalf("T=%d: game over without a death cause", ts.CurrentTick())
		}
	}
}

func checkAll(t *testing.T, ts *TestSim) {
	t.Helper()
	checkBodyIntegrity(t, ts)
	checkFoodPlacement(t, ts)
	checkLengthScoreCoupled(t, ts)
	checkSpeedLaw(t, ts)
	checkPhaseConsistent(t, ts)
}

// --- Invariant test scenarios ---

func TestInvariant_AutopilotRound(t *testing.T) {
	for _, seed := range []int64{11, 23, 47} {
		ts := NewTestSim(WithSeed(seed), WithStarted())

		ended := false
		for i := 0; i < 50000; i++ {
			end := ts.RunAutopilot(1)
			checkAll(t, ts)
			if end >= 0 {
				ended = true
				break
			}
		}
		if !ended {
			t.Fatalf("seed %d: round still alive after tick budget", seed)
		}
		if ts.Game.Score == 0 {
			t.Errorf("seed %d: autopilot never ate; steering is broken", seed)
		}
	}
}

func TestInvariant_MultiRoundSession(t *testing.T) {
	ts := NewTestSim(WithSeed(31), WithStarted())
	g := ts.Game

	prevHigh := 0
	for round := 1; round <= 5; round++ {
		for i := 0; i < 50000; i++ {
			if end := ts.RunAutopilot(1); end >= 0 {
				break
			}
		}
		if !g.Over() {
			t.Fatalf("round %d still alive after tick budget", round)
		}
		checkAll(t, ts)

		if g.HighScore < prevHigh {
			t.Fatalf("round %d: high score dropped %d → %d", round, prevHigh, g.HighScore)
		}
		prevHigh = g.HighScore
		if got := len(g.stats.Runs); got != round {
			t.Fatalf("round %d: %d run records", round, got)
		}

		g.StartIntent()
		if g.Phase() != PhasePlaying {
			t.Fatalf("round %d: restart landed in %v", round, g.Phase())
		}
		checkAll(t, ts)
	}
}

func TestInvariant_FoodStaysOffSnakeAcrossEats(t *testing.T) {
	ts := NewTestSim(WithSeed(91), WithStarted())

	eats := 0
	for i := 0; i < 50000; i++ {
		before := ts.Game.Score
		end := ts.RunAutopilot(1)
		if ts.Game.Score > before {
			eats++
			checkFoodPlacement(t, ts)
		}
		if end >= 0 {
			break
		}
	}
	if eats < 5 {
		t.Fatalf("only %d eats before the round ended; scenario too short", eats)
	}
}

func TestInvariant_PauseFreezesEverything(t *testing.T) {
	ts := NewTestSim(WithSeed(13), WithStarted())
	ts.RunAutopilot(40)
	if ts.Game.Over() {
		// A short snake always has a safe move, so this cannot happen.
		t.Fatalf("round ended within 40 ticks\n%s", ts.SimLog.Format())
	}

	ts.Game.PauseToggleIntent()
	before := ts.Snapshot()
	ts.RunTicks(500)
	after := ts.Snapshot()

	if !snapshotsEqual(before, after) {
		t.Errorf("paused state drifted:\nbefore %+v\nafter  %+v", before, after)
	}

	ts.Game.PauseToggleIntent()
	ts.RunTicks(1)
	if ts.CurrentTick() != before.Tick+1 {
		t.Errorf("tick after resume = %d, want %d", ts.CurrentTick(), before.Tick+1)
	}
	checkAll(t, ts)
}
