package engine

import (
	"math"

	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// Paddle is one player's bat. Y is the top edge in field units. Width,
// height and speed come from the settings store on every update.
type Paddle struct {
	Side events.Side
	Y    float64

	// SpeedMultiplier is a live modifier owned by the powerup layer
	// (1.0 = unmodified). Reset on round reset.
	SpeedMultiplier float64
}

func newPaddle(side events.Side, disp settings.Display, cfg settings.Paddle) *Paddle {
	p := &Paddle{Side: side, SpeedMultiplier: 1}
	p.Center(disp, cfg)
	return p
}

// X derives the horizontal position from margin settings; left paddles
// sit at the margin, right paddles mirror it
func (p *Paddle) X(cfg settings.Paddle, disp settings.Display) float64 {
	if p.Side == events.SideLeft {
		return cfg.MarginX
	}
	return float64(disp.Width) - cfg.MarginX - cfg.Width
}

// Update moves the paddle by the held input state and clamps it to the
// playfield vertical bounds
func (p *Paddle) Update(dt float64, up, down bool, cfg settings.Paddle, disp settings.Display) {
	dir := 0.0
	if up {
		dir -= 1
	}
	if down {
		dir += 1
	}

	p.Y += dir * cfg.Speed * p.SpeedMultiplier * dt
	p.clamp(cfg, disp)
}

// Center places the paddle at the vertical midpoint (serve position)
func (p *Paddle) Center(disp settings.Display, cfg settings.Paddle) {
	p.Y = (float64(disp.Height) - cfg.Height) / 2
}

func (p *Paddle) clamp(cfg settings.Paddle, disp settings.Display) {
	limit := math.Max(0, float64(disp.Height)-cfg.Height)
	p.Y = math.Max(0, math.Min(limit, p.Y))
}
