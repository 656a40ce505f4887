package systems

import (
	"time"

	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
)

// SoundPlayer is the audio backend contract. The production player
// synthesizes tones through the speaker; tests substitute a recorder.
type SoundPlayer interface {
	Play(freq float64, duration time.Duration, volume float64)
}

// AudioSystem maps gameplay events to short synthesized tones, scaled
// by the audio settings section
type AudioSystem struct {
	ctx    *engine.Context
	player SoundPlayer
}

func NewAudioSystem(ctx *engine.Context, player SoundPlayer) *AudioSystem {
	a := &AudioSystem{ctx: ctx, player: player}

	bus := ctx.Bus
	bus.Subscribe(events.TypeBallHitPaddle, a.onEvent)
	bus.Subscribe(events.TypeScoreChanged, a.onEvent)
	bus.Subscribe(events.TypeMatchOver, a.onEvent)
	bus.Subscribe(events.TypePowerupActivated, a.onEvent)
	bus.Subscribe(events.TypeGameReset, a.onEvent)
	bus.Subscribe(events.TypeSoundRequest, a.onEvent)
	return a
}

// Update is a no-op; audio is purely event driven
func (a *AudioSystem) Update(time.Duration) {}

func (a *AudioSystem) onEvent(e events.Event) {
	if a.player == nil {
		return
	}

	cfg := a.ctx.Settings.Audio()
	volume := cfg.MasterVolume * cfg.SFXVolume
	if volume <= 0 {
		return
	}

	switch e.Type {
	case events.TypeBallHitPaddle:
		a.player.Play(880, 40*time.Millisecond, volume)
	case events.TypeScoreChanged:
		a.player.Play(440, 120*time.Millisecond, volume)
	case events.TypeMatchOver:
		a.player.Play(660, 400*time.Millisecond, volume)
	case events.TypePowerupActivated:
		a.player.Play(990, 80*time.Millisecond, volume)
	case events.TypeGameReset:
		a.player.Play(520, 100*time.Millisecond, volume)
	case events.TypeSoundRequest:
		if p, ok := e.Payload.(*events.SoundRequestPayload); ok {
			a.player.Play(p.Freq, time.Duration(p.DurationMs)*time.Millisecond, volume)
		}
	}
}
