// Package audio plays short synthesized sound effects through the system
// speaker. Effects are generated, not sampled, so no asset files ship with
// the binary.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"astrovoid/internal/entity"
)

const sampleRate = beep.SampleRate(44100)

// Engine synthesizes and plays the game's sound effects. It is safe for use
// from a single game loop; the speaker mixes concurrent effects itself.
type Engine struct {
	mu    sync.Mutex
	muted bool
}

var _ entity.SoundSink = (*Engine)(nil)

// NewEngine initializes the speaker and returns an engine. The buffer is kept
// short so effects land close to the events that trigger them.
func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Engine{}, nil
}

// SetMuted toggles all effect playback.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// Play starts the named effect. Unknown names are ignored.
func (e *Engine) Play(name string) {
	e.mu.Lock()
	muted := e.muted
	e.mu.Unlock()
	if muted {
		return
	}

	switch name {
	case entity.SoundShoot:
		e.tone(880, 60*time.Millisecond, -2)
	case entity.SoundBoom:
		e.tone(110, 250*time.Millisecond, -1)
	case entity.SoundCollision:
		e.tone(220, 150*time.Millisecond, -1.5)
	}
}

// tone queues a fixed-length sine burst at the given frequency. Volume is in
// powers of two below unity.
func (e *Engine) tone(freq int, d time.Duration, volume float64) {
	osc, err := generators.SinTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), osc),
		Base:     2,
		Volume:   volume,
	})
}
