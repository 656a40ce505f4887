package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the visual frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps the per-tick elapsed time so a stalled
	// terminal does not teleport entities through paddles
	MaxFrameDelta = 100 * time.Millisecond

	// InputHoldWindow is how long a key counts as held after its last
	// press or repeat. Terminals deliver no key-up events; key repeat
	// refreshes the window while the key stays down.
	InputHoldWindow = 150 * time.Millisecond
)

// ServeAngleRatio is the vertical velocity fraction on serve
const ServeAngleRatio = 0.33
