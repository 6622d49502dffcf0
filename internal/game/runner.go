package game

import (
	"sync"
	"time"
)

// Runner fires a callback at a fixed interval on a single goroutine: a
// cancellable periodic task whose period can be swapped while it runs.
// Because every invocation happens on the one loop goroutine, ticks never
// overlap; a period change or a stop lets the in-flight callback finish
// first. The windowed frontend drives the game from the render loop
// instead; the headless runner and the realtime tests use this.
type Runner struct {
	fn     func()
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// TickPeriod converts a tick rate in ticks per second into a runner period.
// Rates below one tick per second are pinned to one.
func TickPeriod(speed int) time.Duration {
	if speed < 1 {
		speed = 1
	}
	return time.Second / time.Duration(speed)
}

// NewRunner creates a runner that will invoke fn at the given period once
// started.
func NewRunner(period time.Duration, fn func()) *Runner {
	return &Runner{
		fn:     fn,
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
}

// Start launches the loop goroutine. Call it once.
func (r *Runner) Start() {
	go r.loop()
}

func (r *Runner) loop() {
	for {
		select {
		case <-r.done:
			return
		case <-r.ticker.C:
			r.fn()
		}
	}
}

// SetPeriod reinstalls the firing interval. The next fire happens a full
// new period from now; an in-flight callback is never preempted. Safe to
// call from the callback itself or from another goroutine.
func (r *Runner) SetPeriod(d time.Duration) {
	r.ticker.Reset(d)
}

// Stop cancels the periodic task. Idempotent, and safe to call from the
// callback itself. After a Stop issued inside the callback, no further
// invocation starts.
func (r *Runner) Stop() {
	r.once.Do(func() {
		r.ticker.Stop()
		close(r.done)
	})
}
