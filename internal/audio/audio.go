package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player mixes short procedural effects for game events. Every effect is
// synthesized on the fly; there are no audio assets. A Player whose Init
// failed (no audio device, headless run) stays usable and plays nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player with an empty mixer. Call Init before playing.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and attaches the shared mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	return p.muted
}

// Muted reports whether effects are currently suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.muted
}

// playFor schedules a one-shot effect of the given length on the mixer.
func (p *Player) playFor(d time.Duration, s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(beep.Take(sampleRate.N(d), s))
}

// PlayStart plays the two-note chirp that opens a round.
func (p *Player) PlayStart() {
	p.playFor(time.Millisecond*220,
		NewChirpGenerator(sampleRate, 440, 880, time.Millisecond*220))
}

// PlayEat plays a short rising blip.
func (p *Player) PlayEat() {
	p.playFor(time.Millisecond*90,
		NewBlipGenerator(sampleRate, 660, 880, time.Millisecond*90))
}

// PlayGameOver plays a falling tone with a decay tail.
func (p *Player) PlayGameOver() {
	p.playFor(time.Millisecond*500,
		NewWailGenerator(sampleRate, 330, 90, time.Millisecond*500))
}
