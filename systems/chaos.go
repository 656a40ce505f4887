// Package systems contains the bus subscribers that shape gameplay
// without owning entities: chaos modulation, powerups, skins, audio.
// Systems request every mutation through events; the orchestrator is
// the only settings writer.
package systems

import (
	"time"

	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// ChaosSystem periodically perturbs ball physics and adds a ball.
// Interval and on/off switch live in the chaos settings section, so the
// system itself is tunable at runtime like everything else.
type ChaosSystem struct {
	ctx     *engine.Context
	elapsed time.Duration
}

func NewChaosSystem(ctx *engine.Context) *ChaosSystem {
	return &ChaosSystem{ctx: ctx}
}

// Update accumulates tick time and fires one variation per interval
func (c *ChaosSystem) Update(dt time.Duration) {
	cfg := c.ctx.Settings.Chaos()
	if !cfg.Enabled {
		c.elapsed = 0
		return
	}

	c.elapsed += dt
	interval := time.Duration(cfg.IntervalSec * float64(time.Second))
	if interval <= 0 || c.elapsed < interval {
		return
	}
	c.elapsed = 0

	ball := c.ctx.Settings.Ball()
	rnd := c.ctx.Rand

	speed := ball.Speed * (0.85 + rnd.Float64()*0.45)
	size := ball.Size * (0.8 + rnd.Float64()*0.4)
	if size < 1 {
		size = 1
	}
	if size > 6 {
		size = 6
	}

	c.ctx.Bus.Emit(events.TypeSettingsChangeRequested, &events.SettingsChangeRequestedPayload{
		Section: settings.SectionBall,
		Values:  map[string]any{"speed": speed, "size": size},
	})
	c.ctx.Bus.Emit(events.TypeSpawnBallRequested, &events.SpawnBallRequestedPayload{Count: 1})
}
