package systems

import (
	"time"

	"github.com/samber/oops"

	"github.com/K4zuy4/BattlePong-7/constants"
	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// Powerup names known to the manager
const (
	PowerupBigPaddle = "big_paddle"
	PowerupMultiball = "multiball"
)

// PowerupManager tracks owned powerups and applies their effects.
//
// Consumable powerups are activated explicitly: activation decrements
// the inventory, publishes the effect as events (settings patch or
// spawn request) and schedules the reverting patch on the engine
// scheduler. The passive speed boost briefly accelerates a paddle
// after it deflects a ball and is cleared whenever a point lands.
type PowerupManager struct {
	ctx       *engine.Context
	inventory map[string]int

	// Passive boost windows per side; paddle references are borrowed
	// from the orchestrator to drive SpeedMultiplier, never owned
	paddles [2]*engine.Paddle
	boosts  [2]time.Duration

	// Deadline of the pending big_paddle revert. Stacking activations
	// would capture the boosted height as the value to revert to.
	bigPaddleUntil time.Time
}

func NewPowerupManager(ctx *engine.Context, left, right *engine.Paddle) *PowerupManager {
	m := &PowerupManager{
		ctx: ctx,
		inventory: map[string]int{
			PowerupBigPaddle: constants.StartingPowerupStock,
			PowerupMultiball: constants.StartingPowerupStock,
		},
		paddles: [2]*engine.Paddle{left, right},
	}

	ctx.Bus.Subscribe(events.TypeBallHitPaddle, m.onBallHitPaddle)
	ctx.Bus.Subscribe(events.TypeScoreChanged, m.onScoreChanged)
	ctx.Bus.Subscribe(events.TypeGameReset, m.onGameReset)
	return m
}

// Activate consumes one unit of the named powerup and publishes its
// effect. Unknown or depleted powerups are reported and ignored.
func (m *PowerupManager) Activate(name string) {
	if m.inventory[name] <= 0 {
		m.ctx.Reporter.Report(oops.
			Code("POWERUP_UNAVAILABLE").
			With("powerup", name).
			Errorf("activation of missing powerup"))
		return
	}
	if name == PowerupBigPaddle && m.ctx.Now().Before(m.bigPaddleUntil) {
		m.ctx.Reporter.Report(oops.
			Code("POWERUP_ACTIVE").
			With("powerup", name).
			Errorf("activation while still active"))
		return
	}
	m.inventory[name]--

	switch name {
	case PowerupBigPaddle:
		m.bigPaddleUntil = m.ctx.Now().Add(constants.BigPaddleDuration)
		height := m.ctx.Settings.Paddle().Height
		m.ctx.Bus.Emit(events.TypeSettingsChangeRequested, &events.SettingsChangeRequestedPayload{
			Section: settings.SectionPaddle,
			Values:  map[string]any{"height": height * constants.BigPaddleFactor},
		})
		m.ctx.Scheduler.After(constants.BigPaddleDuration, events.TypeSettingsChangeRequested,
			&events.SettingsChangeRequestedPayload{
				Section: settings.SectionPaddle,
				Values:  map[string]any{"height": height},
			})
	case PowerupMultiball:
		m.ctx.Bus.Emit(events.TypeSpawnBallRequested, &events.SpawnBallRequestedPayload{
			Count: constants.MultiballCount,
		})
	}

	m.ctx.Bus.Emit(events.TypePowerupActivated, &events.PowerupActivatedPayload{Name: name})
}

// Inventory returns a copy of the current stock
func (m *PowerupManager) Inventory() map[string]int {
	out := make(map[string]int, len(m.inventory))
	for k, v := range m.inventory {
		out[k] = v
	}
	return out
}

// Update winds down the passive boost windows
func (m *PowerupManager) Update(dt time.Duration) {
	for side, p := range m.paddles {
		if p == nil {
			continue
		}
		if m.boosts[side] > 0 {
			m.boosts[side] -= dt
			p.SpeedMultiplier = constants.SpeedBoostFactor
		}
		if m.boosts[side] <= 0 {
			m.boosts[side] = 0
			p.SpeedMultiplier = 1
		}
	}
}

func (m *PowerupManager) onBallHitPaddle(e events.Event) {
	p, ok := e.Payload.(*events.BallHitPaddlePayload)
	if !ok {
		return
	}
	m.boosts[p.Paddle] = constants.SpeedBoostDuration
}

func (m *PowerupManager) onScoreChanged(events.Event) {
	m.clearBoosts()
}

func (m *PowerupManager) onGameReset(events.Event) {
	m.clearBoosts()
	m.bigPaddleUntil = time.Time{}
	m.inventory[PowerupBigPaddle] = constants.StartingPowerupStock
	m.inventory[PowerupMultiball] = constants.StartingPowerupStock
}

func (m *PowerupManager) clearBoosts() {
	m.boosts = [2]time.Duration{}
	for _, p := range m.paddles {
		if p != nil {
			p.SpeedMultiplier = 1
		}
	}
}
