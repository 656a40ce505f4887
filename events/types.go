package events

import "time"

// Type identifies the kind of a game event
type Type int

const (
	// TypeSettingsChangeRequested asks the settings applier to patch one section
	// Trigger: systems, powerups, menu UI
	// Consumer: engine settings applier | Payload: *SettingsChangeRequestedPayload
	TypeSettingsChangeRequested Type = iota

	// TypeSettingsChanged announces a committed settings patch
	// Trigger: settings.Store after a successful Patch
	// Consumer: SkinSystem, renderer, anything caching derived state
	// Payload: *SettingsChangedPayload
	TypeSettingsChanged

	// TypeDisplayRecreate asks the rendering collaborator to rebuild its surface
	// Trigger: settings.Store when display width/height change
	// Consumer: renderer | Payload: *DisplayRecreatePayload
	TypeDisplayRecreate

	// TypeSpawnBallRequested adds balls to the live set
	// Trigger: input (space), ChaosSystem, powerups
	// Consumer: engine.Game | Payload: *SpawnBallRequestedPayload
	TypeSpawnBallRequested

	// TypeBallHitPaddle signals a paddle deflection
	// Trigger: engine collision step
	// Consumer: PowerupManager (speed boost), AudioSystem
	// Payload: *BallHitPaddlePayload
	TypeBallHitPaddle

	// TypeBallOut signals a ball crossed the left or right bound
	// Trigger: engine collision step, before the ball is removed
	// Consumer: diagnostics | Payload: *BallOutPayload
	TypeBallOut

	// TypeScoreChanged announces a per-side score increment
	// Trigger: engine scoring rule on ball exit
	// Consumer: UI, AudioSystem | Payload: *ScoreChangedPayload
	TypeScoreChanged

	// TypeMatchOver signals the win-score threshold was reached
	// Trigger: engine terminal check
	// Consumer: scene layer, AudioSystem | Payload: *MatchOverPayload
	TypeMatchOver

	// TypeRoundReset signals entities returned to serve positions after a point
	// Trigger: engine after applying a score | Payload: nil
	TypeRoundReset

	// TypeGameReset restores settings defaults, one ball, zero scores
	// Trigger: restart input after MatchOver, scene layer
	// Consumer: engine.Game, settings applier | Payload: nil
	TypeGameReset

	// TypePowerupActivated announces a consumed powerup taking effect
	// Trigger: PowerupManager.Activate
	// Consumer: AudioSystem, UI | Payload: *PowerupActivatedPayload
	TypePowerupActivated

	// TypeSoundRequest asks the audio collaborator to play a tone
	// Trigger: any system | Consumer: AudioSystem | Payload: *SoundRequestPayload
	TypeSoundRequest
)

// Event is an immutable occurrence published on the bus.
// Payload is never mutated after publish.
type Event struct {
	Type      Type
	Payload   any
	Timestamp time.Time
}
