package engine

import (
	"math"

	"github.com/oklog/ulid/v2"

	"github.com/K4zuy4/BattlePong-7/settings"
)

// Ball is a neutral entity; no side owns it. Position is the center in
// field units. Size and physics constants are read from the settings
// store every update, never cached, so live patches affect balls
// already in play.
type Ball struct {
	ID       string
	X, Y     float64
	VX, VY   float64
	Rotation float64 // degrees, cosmetic spin for skinned rendering
}

func newBall(x, y, vx, vy float64) *Ball {
	return &Ball{
		ID: ulid.Make().String(),
		X:  x, Y: y,
		VX: vx, VY: vy,
	}
}

// Update integrates position by velocity over dt seconds
func (b *Ball) Update(dt, rotationSpeed float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
	b.Rotation = math.Mod(b.Rotation+rotationSpeed*dt, 360)
}

// Radius derives the current half-size from live settings
func (b *Ball) Radius(cfg settings.Ball) float64 {
	return cfg.Size / 2
}

// Speed returns the current velocity magnitude
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// BounceVertical reflects the vertical velocity component
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// BounceFromPaddle reflects the ball off p. The exit angle follows the
// contact point relative to the paddle center (off-center hits deflect
// more, up to MaxBounceAngleDeg), and speed escalates by SpeedGrowth
// capped at MaxSpeed.
func (b *Ball) BounceFromPaddle(p *Paddle, ballCfg settings.Ball, paddleCfg settings.Paddle, disp settings.Display) {
	paddleCenter := p.Y + paddleCfg.Height/2
	relative := (b.Y - paddleCenter) / (paddleCfg.Height / 2)
	relative = math.Max(-1, math.Min(1, relative))

	angle := relative * ballCfg.MaxBounceAngleDeg * math.Pi / 180
	speed := math.Min(b.Speed()*ballCfg.SpeedGrowth, ballCfg.MaxSpeed)

	vx := math.Abs(speed * math.Cos(angle))
	if b.VX > 0 {
		vx = -vx
	}
	b.VX = vx
	b.VY = speed * math.Sin(angle)

	// Reposition flush with the paddle face so one hit cannot trigger twice
	r := b.Radius(ballCfg)
	if b.VX > 0 {
		b.X = p.X(paddleCfg, disp) + paddleCfg.Width + r
	} else {
		b.X = p.X(paddleCfg, disp) - r
	}
}

// overlapsPaddle reports AABB overlap with the paddle's bounding region
func (b *Ball) overlapsPaddle(p *Paddle, ballCfg settings.Ball, paddleCfg settings.Paddle, disp settings.Display) bool {
	r := b.Radius(ballCfg)
	px := p.X(paddleCfg, disp)
	return b.X+r >= px && b.X-r <= px+paddleCfg.Width &&
		b.Y+r >= p.Y && b.Y-r <= p.Y+paddleCfg.Height
}
