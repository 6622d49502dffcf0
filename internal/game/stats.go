package game

import "github.com/google/uuid"

// RunRecord captures one completed round, from start to game over.
type RunRecord struct {
	RunID      string // stable handle for reports and log correlation
	StartTick  int
	EndTick    int
	Score      int
	FinalLen   int
	FinalSpeed int // tick rate at death; the rate never drops mid-round
	Cause      DeathCause
}

// Ticks returns how many effective ticks the run lasted.
func (r RunRecord) Ticks() int {
	return r.EndTick - r.StartTick
}

// SessionStats accumulates run records for the lifetime of one Game.
// Everything lives in memory; nothing is persisted.
type SessionStats struct {
	Runs    []RunRecord
	current *RunRecord
}

// NewSessionStats creates an empty record set.
func NewSessionStats() *SessionStats {
	return &SessionStats{}
}

// BeginRun opens a new run record at the given tick. Beginning while a run
// is already open replaces the open record; only completed runs are kept.
func (ss *SessionStats) BeginRun(tick int) {
	ss.current = &RunRecord{
		RunID:     uuid.NewString(),
		StartTick: tick,
	}
}

// EndRun closes the open run record with the final round state. Without a
// matching BeginRun it does nothing.
func (ss *SessionStats) EndRun(tick, score, finalLen, finalSpeed int, cause DeathCause) {
	if ss.current == nil {
		return
	}
	r := *ss.current
	r.EndTick = tick
	r.Score = score
	r.FinalLen = finalLen
	r.FinalSpeed = finalSpeed
	r.Cause = cause
	ss.Runs = append(ss.Runs, r)
	ss.current = nil
}

// InProgress reports whether a run record is currently open.
func (ss *SessionStats) InProgress() bool {
	return ss.current != nil
}

// BestScore returns the highest score across completed runs.
func (ss *SessionStats) BestScore() int {
	best := 0
	for _, r := range ss.Runs {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// AvgScore returns the mean score across completed runs, 0 with none.
func (ss *SessionStats) AvgScore() float64 {
	if len(ss.Runs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ss.Runs {
		sum += r.Score
	}
	return float64(sum) / float64(len(ss.Runs))
}

// LongestRun returns the completed run with the most ticks, or false if no
// run has completed yet.
func (ss *SessionStats) LongestRun() (RunRecord, bool) {
	if len(ss.Runs) == 0 {
		return RunRecord{}, false
	}
	best := ss.Runs[0]
	for _, r := range ss.Runs[1:] {
		if r.Ticks() > best.Ticks() {
			best = r
		}
	}
	return best, true
}

// DeathCounts tallies completed runs by cause.
func (ss *SessionStats) DeathCounts() map[DeathCause]int {
	out := make(map[DeathCause]int)
	for _, r := range ss.Runs {
		out[r.Cause]++
	}
	return out
}
