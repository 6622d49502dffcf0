package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator plays two short notes back to back, low then high.
type ChirpGenerator struct {
	sr      beep.SampleRate
	lowHz   float64
	highHz  float64
	pos     int
	samples int
}

// NewChirpGenerator creates a two-note chirp spanning d in total.
func NewChirpGenerator(sr beep.SampleRate, lowHz, highHz float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		lowHz:   lowHz,
		highHz:  highHz,
		samples: sr.N(d),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.samples / 2
	for i := range samples {
		freq := g.lowHz
		notePos := g.pos
		if g.pos >= half {
			freq = g.highHz
			notePos = g.pos - half
		}
		t := float64(notePos) / float64(g.sr)

		// Per-note envelope: 5ms attack, linear release to the note end.
		// Starting and ending each note at zero avoids clicks at the join.
		noteLen := float64(half) / float64(g.sr)
		attack := math.Min(t/0.005, 1.0)
		release := 1.0 - t/noteLen
		if release < 0 {
			release = 0
		}
		sample := 0.25 * attack * release * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BlipGenerator produces a single bright blip sweeping upward in pitch
// with a fast decay.
type BlipGenerator struct {
	sr      beep.SampleRate
	fromHz  float64
	toHz    float64
	pos     int
	samples int
}

// NewBlipGenerator creates a rising-blip generator spanning d.
func NewBlipGenerator(sr beep.SampleRate, fromHz, toHz float64, d time.Duration) *BlipGenerator {
	return &BlipGenerator{
		sr:      sr,
		fromHz:  fromHz,
		toHz:    toHz,
		samples: sr.N(d),
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Frequency slides linearly across the configured span.
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}
		freq := g.fromHz + (g.toHz-g.fromHz)*progress

		// Fundamental plus one octave for brightness.
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*freq*t)
		sample += 0.12 * math.Sin(2*math.Pi*freq*2*t)

		// 4ms attack, sharp exponential decay.
		attack := math.Min(t/0.004, 1.0)
		decay := math.Exp(-t * 28)
		sample *= attack * decay

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// WailGenerator produces a tone sliding from fromHz down to toHz with a
// sub-octave growl underneath, fading out across the effect.
type WailGenerator struct {
	sr      beep.SampleRate
	fromHz  float64
	toHz    float64
	pos     int
	samples int
}

// NewWailGenerator creates a falling-tone generator spanning d.
func NewWailGenerator(sr beep.SampleRate, fromHz, toHz float64, d time.Duration) *WailGenerator {
	return &WailGenerator{
		sr:      sr,
		fromHz:  fromHz,
		toHz:    toHz,
		samples: sr.N(d),
	}
}

func (g *WailGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Frequency slides linearly across the configured span.
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}
		freq := g.fromHz + (g.toHz-g.fromHz)*progress

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*freq*t)
		sample += 0.12 * math.Sin(2*math.Pi*freq*0.5*t)

		// 10ms attack, slow decay so the tail lingers.
		attack := math.Min(t/0.01, 1.0)
		decay := math.Exp(-t * 4)
		sample *= attack * decay

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WailGenerator) Err() error {
	return nil
}
