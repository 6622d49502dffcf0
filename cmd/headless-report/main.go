package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Garsondee/Grid-Snake/internal/game"
)

type runResult struct {
	runIndex int
	seed     int64

	completed  bool // round ended inside the tick budget
	endTick    int
	score      int
	finalLen   int
	finalSpeed int
	cause      game.DeathCause

	eats         int
	speedChanges int
	firstEatTick int
}

// aggregate holds totals folded across all runs.
type aggregate struct {
	runs      int
	completed int

	totalScore int
	totalEats  int
	bestScore  int
	bestRun    int
	capRuns    int // runs that reached MaxSpeed

	wallDeaths    int
	selfDeaths    int
	survivalTicks []int // end ticks of completed runs only
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var realtime bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot runs")
	flag.IntVar(&ticks, "ticks", 50000, "tick budget per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "autopilot", "scenario name")
	flag.BoolVar(&realtime, "realtime", false, "pace ticks at the live speed ramp instead of running flat out")
	flag.BoolVar(&verbose, "verbose", false, "record per-tick movement entries and print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "autopilot" {
		fmt.Printf("error: unsupported scenario %q (supported: autopilot)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d realtime=%v\n\n",
		scenario, runs, ticks, seedBase, seedStep, realtime)

	all := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rr := runAutopilotRound(i+1, seed, ticks, verbose, realtime)
		all = append(all, rr)
		printRun(rr)
	}

	printAggregate(aggregateRuns(all))
}

func runAutopilotRound(runIndex int, seed int64, ticks int, verbose, realtime bool) runResult {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithVerbose(verbose),
		game.WithStarted(),
	)

	if realtime {
		runRealtime(ts.Game, ticks)
	} else {
		ts.RunAutopilot(ticks)
	}

	g := ts.Game
	rr := runResult{
		runIndex:     runIndex,
		seed:         seed,
		completed:    g.Over(),
		endTick:      ts.CurrentTick(),
		score:        g.Score,
		finalLen:     len(g.Snake.Body),
		finalSpeed:   g.Speed,
		cause:        g.DeathCause(),
		eats:         ts.SimLog.CountCategory("eat", "food"),
		speedChanges: ts.SimLog.CountCategory("speed", "change"),
		firstEatTick: firstTick(ts.SimLog.Entries(), "eat", "food", ""),
	}

	if verbose {
		fmt.Printf("--- Run %d event log ---\n%s\n", runIndex, ts.SimLog.Format())
	}
	return rr
}

// runRealtime drives the game on a wall-clock ticker, resizing the tick
// period whenever the speed ramps. It returns once the round ends or the
// tick budget runs out.
func runRealtime(g *game.Game, maxTicks int) {
	var pilot game.Autopilot
	done := make(chan struct{})
	ticks := 0
	lastSpeed := g.Speed

	var r *game.Runner
	r = game.NewRunner(game.TickPeriod(g.Speed), func() {
		pilot.Steer(g)
		g.Tick()
		ticks++
		if g.Speed != lastSpeed {
			lastSpeed = g.Speed
			r.SetPeriod(game.TickPeriod(lastSpeed))
		}
		if g.Over() || ticks >= maxTicks {
			r.Stop()
			close(done)
		}
	})
	r.Start()
	<-done
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rr runResult) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rr.runIndex, rr.seed)
	outcome := "alive_at_budget"
	if rr.completed {
		outcome = fmt.Sprintf("death=%s", rr.cause)
	}
	fmt.Printf("outcome: %s end_tick=%d\n", outcome, rr.endTick)
	fmt.Printf("scoring: score=%d eats=%d first_eat=%d final_len=%d\n",
		rr.score, rr.eats, rr.firstEatTick, rr.finalLen)
	fmt.Printf("pacing: final_speed=%d speed_changes=%d eats_per_100_ticks=%s at_speed_cap=%v\n",
		rr.finalSpeed, rr.speedChanges, eatRateString(rr), rr.finalSpeed >= game.MaxSpeed)
	fmt.Println()
}

// eatRateString reports eats per 100 ticks, or n/a for a zero-length run.
func eatRateString(rr runResult) string {
	if rr.endTick <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", float64(rr.eats)*100/float64(rr.endTick))
}

func aggregateRuns(all []runResult) aggregate {
	ag := aggregate{
		runs:      len(all),
		bestScore: -1,
	}
	for _, rr := range all {
		ag.totalScore += rr.score
		ag.totalEats += rr.eats
		if rr.completed {
			ag.completed++
			ag.survivalTicks = append(ag.survivalTicks, rr.endTick)
			switch rr.cause {
			case game.DeathWall:
				ag.wallDeaths++
			case game.DeathSelf:
				ag.selfDeaths++
			}
		}
		if rr.score > ag.bestScore {
			ag.bestScore = rr.score
			ag.bestRun = rr.runIndex
		}
		if rr.finalSpeed >= game.MaxSpeed {
			ag.capRuns++
		}
	}
	return ag
}

func printAggregate(ag aggregate) {
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d completed=%d\n", ag.runs, ag.completed)
	fmt.Printf("score: avg=%.1f best=%d (run %d)\n",
		avg(ag.totalScore, ag.runs), ag.bestScore, ag.bestRun)
	fmt.Printf("eats_per_run: %.1f\n", avg(ag.totalEats, ag.runs))
	fmt.Printf("speed_cap_runs: %d\n", ag.capRuns)
	fmt.Printf("survival_ticks: avg=%s\n", avgTickString(ag.survivalTicks))
	fmt.Printf("deaths: wall=%d self=%d\n", ag.wallDeaths, ag.selfDeaths)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
