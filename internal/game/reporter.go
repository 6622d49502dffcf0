package game

import (
	"fmt"
	"strings"
)

// reportTimelineEvents is how many trailing log events the report includes.
const reportTimelineEvents = 12

// Report renders the whole session as a human-readable multi-line string:
// the live state, every completed run, aggregates, and a short tail of the
// event timeline. The windowed frontend copies this to the clipboard; the
// headless runner prints it.
func (g *Game) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Grid Snake Session Report (T=%d) ===\n", g.tick)

	sb.WriteString("\n--- Current ---\n")
	head := g.Snake.Head()
	fmt.Fprintf(&sb, "  Phase: %-9s  Score: %-4d High: %-4d Speed: %d\n",
		g.Phase(), g.Score, g.HighScore, g.Speed)
	fmt.Fprintf(&sb, "  Snake: len=%-4d head=(%d,%d)  dir=%s\n",
		len(g.Snake.Body), head.X, head.Y, g.Snake.Dir)
	fmt.Fprintf(&sb, "  Food:  (%d,%d)\n", g.Food.Pos.X, g.Food.Pos.Y)
	if g.over {
		fmt.Fprintf(&sb, "  Death: %s\n", g.cause)
	}

	fmt.Fprintf(&sb, "\n--- Runs (%d completed) ---\n", len(g.stats.Runs))
	for i, r := range g.stats.Runs {
		fmt.Fprintf(&sb, "  #%-3d %-8s score=%-4d len=%-4d ticks=%-6d speed=%-3d death=%s\n",
			i+1, shortRunID(r.RunID), r.Score, r.FinalLen, r.Ticks(), r.FinalSpeed, r.Cause)
	}
	if len(g.stats.Runs) > 0 {
		fmt.Fprintf(&sb, "  Best: %d  Avg: %.1f", g.stats.BestScore(), g.stats.AvgScore())
		if longest, ok := g.stats.LongestRun(); ok {
			fmt.Fprintf(&sb, "  Longest: %d ticks", longest.Ticks())
		}
		sb.WriteByte('\n')
		deaths := g.stats.DeathCounts()
		fmt.Fprintf(&sb, "  Deaths: wall=%d self=%d\n", deaths[DeathWall], deaths[DeathSelf])
	}

	sb.WriteString("\n--- Recent Events ---\n")
	entries := g.log.Entries()
	from := len(entries) - reportTimelineEvents
	if from < 0 {
		from = 0
	}
	if len(entries) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, e := range entries[from:] {
		fmt.Fprintf(&sb, "  %s\n", e)
	}

	return sb.String()
}

// shortRunID trims a run ID to a compact display prefix.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
