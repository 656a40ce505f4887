package constants

import "time"

// Powerup Tuning Constants
const (
	// SpeedBoostDuration is how long a paddle stays boosted after a hit
	SpeedBoostDuration = 1200 * time.Millisecond

	// SpeedBoostFactor multiplies paddle speed while boosted
	SpeedBoostFactor = 1.6

	// BigPaddleDuration is the active window of the big_paddle powerup
	BigPaddleDuration = 8 * time.Second

	// BigPaddleFactor multiplies paddle height while active
	BigPaddleFactor = 2.0

	// MultiballCount is how many balls the multiball powerup adds
	MultiballCount = 2

	// StartingPowerupStock seeds the inventory at game start
	StartingPowerupStock = 3
)
