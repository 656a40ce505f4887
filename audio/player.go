// Package audio synthesizes the game's tones through the system
// speaker. The player satisfies systems.SoundPlayer; when the speaker
// cannot be opened the player stays silent instead of failing the game.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/samber/oops"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes short sine tones into a single speaker stream
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return oops.Code("AUDIO_INIT_FAILED").Wrap(err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one tone. volume is linear in (0, 1]; tones on an
// uninitialized player are dropped silently.
func (p *Player) Play(freq float64, duration time.Duration, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || freq <= 0 || duration <= 0 || volume <= 0 {
		return
	}

	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}

	streamer := beep.Streamer(beep.Take(sampleRate.N(duration), tone))
	if volume < 1 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   math.Log2(volume),
		}
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup silences the mixer and releases the player
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
