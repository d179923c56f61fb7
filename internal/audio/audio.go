// Package audio is the chip-8's beep collaborator: while the VM's sound
// timer is non-zero it plays a continuous tone, and silence otherwise.
// The spec's reference behaviour is a 440Hz sine wave at 0.2 amplitude;
// here that's synthesized directly rather than decoded from a packaged
// sample, so any run of the VM sounds the same without shipping an asset.
package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 440.0
	amplitude  = 0.2
)

// Beeper is a detached audio worker: once started it owns the speaker
// and is driven purely by SetTone, which is safe to call from the VM's
// run loop goroutine. Overlapping SetTone(true) calls are idempotent -
// there's only ever one tone playing or not.
type Beeper struct {
	playing atomic.Bool
	phase   float64
}

// NewBeeper initializes the speaker and starts the beeper streaming
// (silent until the first SetTone(true)).
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	b := &Beeper{}
	speaker.Play(b)
	return b, nil
}

// SetTone turns the tone on or off for subsequent samples.
func (b *Beeper) SetTone(on bool) {
	b.playing.Store(on)
}

// Stream implements beep.Streamer, generating a 440Hz sine wave while
// playing is set and silence otherwise.
func (b *Beeper) Stream(samples [][2]float64) (n int, ok bool) {
	phaseIncrement := 2 * math.Pi * frequency / float64(sampleRate)
	on := b.playing.Load()

	for i := range samples {
		var v float64
		if on {
			v = amplitude * math.Sin(b.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		b.phase += phaseIncrement
		if b.phase >= 2*math.Pi {
			b.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

// Err implements beep.Streamer. The sine generator never fails.
func (b *Beeper) Err() error {
	return nil
}
