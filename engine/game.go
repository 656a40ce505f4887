package engine

import (
	"time"

	"github.com/samber/oops"

	"github.com/K4zuy4/BattlePong-7/constants"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/input"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// State is the core match state
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver // reset-pending: physics stopped, awaiting restart
)

// System is anything the orchestrator advances once per tick.
// Systems react to events through their own bus subscriptions and only
// request mutations by publishing; they never own entities.
type System interface {
	Update(dt time.Duration)
}

// Game is the orchestrator: it owns the entity collection, advances the
// simulation, applies collision/scoring rules and is the single writer
// of the settings store (via SettingsChangeRequested events).
type Game struct {
	ctx *Context

	balls   []*Ball
	paddles [2]*Paddle
	score   [2]int
	state   State
	winner  events.Side

	systems []System
}

// NewGame builds the orchestrator, registers its bus subscriptions and
// serves the opening ball(s)
func NewGame(ctx *Context) *Game {
	g := &Game{ctx: ctx}

	disp := ctx.Settings.Display()
	pcfg := ctx.Settings.Paddle()
	g.paddles[events.SideLeft] = newPaddle(events.SideLeft, disp, pcfg)
	g.paddles[events.SideRight] = newPaddle(events.SideRight, disp, pcfg)
	g.serve()

	bus := ctx.Bus
	bus.Subscribe(events.TypeSettingsChangeRequested, g.onSettingsChangeRequested)
	bus.Subscribe(events.TypeSpawnBallRequested, g.onSpawnBallRequested)
	bus.Subscribe(events.TypeGameReset, g.onGameReset)

	return g
}

// AddSystem registers a system for per-tick updates
func (g *Game) AddSystem(sys System) {
	g.systems = append(g.systems, sys)
}

// Step advances the simulation by dt. Called once per visual frame.
func (g *Game) Step(dt time.Duration, in input.Snapshot) {
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	// Timed effects fire before physics so a revert patch and the tick
	// that observes it land in the same frame
	g.ctx.Scheduler.Drain(g.ctx.Now())

	switch g.state {
	case StateGameOver:
		if in.Restart {
			g.ctx.Bus.Emit(events.TypeGameReset, nil)
		}
		return
	case StatePaused:
		return
	}

	if in.SpawnBall {
		g.ctx.Bus.Emit(events.TypeSpawnBallRequested, &events.SpawnBallRequestedPayload{Count: 1})
	}

	for _, sys := range g.systems {
		sys.Update(dt)
	}

	seconds := dt.Seconds()
	disp := g.ctx.Settings.Display()
	pcfg := g.ctx.Settings.Paddle()
	bcfg := g.ctx.Settings.Ball()
	spin := g.ctx.Settings.Sprites().RotationSpeed

	g.paddles[events.SideLeft].Update(seconds, in.LeftUp, in.LeftDown, pcfg, disp)
	g.paddles[events.SideRight].Update(seconds, in.RightUp, in.RightDown, pcfg, disp)

	for _, b := range g.balls {
		b.Update(seconds, spin)
	}

	g.resolveCollisions(bcfg, pcfg, disp)
	g.resolveScoring(bcfg, disp)
}

// SetPaused flips between Playing and Paused. A finished match stays
// finished until GameReset.
func (g *Game) SetPaused(paused bool) {
	if g.state == StateGameOver {
		return
	}
	if paused {
		g.state = StatePaused
	} else {
		g.state = StatePlaying
	}
}

func (g *Game) resolveCollisions(bcfg settings.Ball, pcfg settings.Paddle, disp settings.Display) {
	height := float64(disp.Height)

	for _, b := range g.balls {
		r := b.Radius(bcfg)

		// Top/bottom walls reflect the vertical component
		if b.Y-r <= 0 && b.VY < 0 {
			b.Y = r
			b.BounceVertical()
		} else if b.Y+r >= height && b.VY > 0 {
			b.Y = height - r
			b.BounceVertical()
		}

		for _, p := range g.paddles {
			if !b.overlapsPaddle(p, bcfg, pcfg, disp) {
				continue
			}
			// Only deflect balls moving toward the paddle face
			if (p.Side == events.SideLeft && b.VX >= 0) ||
				(p.Side == events.SideRight && b.VX <= 0) {
				continue
			}
			b.BounceFromPaddle(p, bcfg, pcfg, disp)
			g.ctx.Bus.Emit(events.TypeBallHitPaddle, &events.BallHitPaddlePayload{
				Paddle: p.Side,
				BallID: b.ID,
			})
		}
	}
}

func (g *Game) resolveScoring(bcfg settings.Ball, disp settings.Display) {
	width := float64(disp.Width)

	// Partition first, publish after. A score subscriber may request a
	// spawn, and its append to the ball list must not be clobbered by
	// the filter assignment below.
	type exit struct {
		ballID   string
		conceded events.Side
	}
	var exits []exit
	remaining := g.balls[:0]
	for _, b := range g.balls {
		r := b.Radius(bcfg)

		switch {
		case b.X+r < 0:
			exits = append(exits, exit{b.ID, events.SideLeft})
		case b.X-r > width:
			exits = append(exits, exit{b.ID, events.SideRight})
		default:
			remaining = append(remaining, b)
		}
	}
	g.balls = remaining

	for _, ex := range exits {
		g.ctx.Bus.Emit(events.TypeBallOut, &events.BallOutPayload{
			BallID:   ex.ballID,
			Conceded: ex.conceded,
		})

		scorer := ex.conceded.Opponent()
		g.score[scorer]++
		g.ctx.Bus.Emit(events.TypeScoreChanged, &events.ScoreChangedPayload{
			Side:  scorer,
			Value: g.score[scorer],
		})
	}

	winScore := g.ctx.Settings.Match().WinScore
	for side, score := range g.score {
		if score >= winScore && g.state == StatePlaying {
			g.state = StateGameOver
			g.winner = events.Side(side)
			g.ctx.Bus.Emit(events.TypeMatchOver, &events.MatchOverPayload{
				Winner: g.winner,
				Score:  g.score,
			})
		}
	}

	if g.state == StatePlaying && len(g.balls) == 0 {
		g.serve()
		disp := g.ctx.Settings.Display()
		pcfg := g.ctx.Settings.Paddle()
		for _, p := range g.paddles {
			p.Center(disp, pcfg)
		}
		g.ctx.Bus.Emit(events.TypeRoundReset, nil)
	}
}

// serve places count_on_reset balls at the field center, aimed at the
// leading side (or right on a tied score)
func (g *Game) serve() {
	bcfg := g.ctx.Settings.Ball()
	disp := g.ctx.Settings.Display()

	dir := 1.0
	if g.score[events.SideLeft] > g.score[events.SideRight] {
		dir = -1
	}

	for i := 0; i < bcfg.CountOnReset; i++ {
		vy := bcfg.Speed * constants.ServeAngleRatio * dir
		if i > 0 {
			vy = bcfg.Speed * constants.ServeAngleRatio * (g.ctx.Rand.Float64()*2 - 1)
		}
		g.balls = append(g.balls, newBall(
			float64(disp.Width)/2,
			float64(disp.Height)/2,
			bcfg.Speed*dir,
			vy,
		))
	}
}

func (g *Game) onSettingsChangeRequested(e events.Event) {
	p, ok := e.Payload.(*events.SettingsChangeRequestedPayload)
	if !ok {
		return
	}
	// Single-writer discipline: only this handler calls Patch while the
	// game is running. Rejections are reported by the store itself.
	g.ctx.Settings.Patch(p.Section, p.Values)
}

func (g *Game) onSpawnBallRequested(e events.Event) {
	p, ok := e.Payload.(*events.SpawnBallRequestedPayload)
	if !ok || p.Count < 1 {
		return
	}

	bcfg := g.ctx.Settings.Ball()
	disp := g.ctx.Settings.Display()
	maxBalls := g.ctx.Settings.Chaos().MaxBalls

	count := p.Count
	if room := maxBalls - len(g.balls); count > room {
		count = room
		g.ctx.Reporter.Report(oops.
			Code("BALLS_EXHAUSTED").
			With("requested", p.Count).
			With("live", len(g.balls)).
			With("max", maxBalls).
			Errorf("spawn request clamped to ball limit"))
	}

	speed := p.Speed
	if speed <= 0 {
		speed = bcfg.Speed
	}

	for i := 0; i < count; i++ {
		dir := 1.0
		if g.ctx.Rand.Intn(2) == 0 {
			dir = -1
		}
		vy := speed * constants.ServeAngleRatio * (g.ctx.Rand.Float64()*2 - 1)
		g.balls = append(g.balls, newBall(
			float64(disp.Width)/2,
			float64(disp.Height)/2,
			speed*dir,
			vy,
		))
	}
}

func (g *Game) onGameReset(events.Event) {
	g.ctx.Settings.Reset()
	g.ctx.Scheduler.Clear()

	g.score = [2]int{}
	g.state = StatePlaying
	g.winner = events.SideLeft
	g.balls = nil
	g.serve()

	disp := g.ctx.Settings.Display()
	pcfg := g.ctx.Settings.Paddle()
	for _, p := range g.paddles {
		p.Center(disp, pcfg)
		p.SpeedMultiplier = 1
	}
}

// Accessors used by the snapshot, scene layer and tests

func (g *Game) State() State        { return g.state }
func (g *Game) Winner() events.Side { return g.winner }
func (g *Game) Score() [2]int       { return g.score }
func (g *Game) Balls() []*Ball      { return g.balls }

func (g *Game) Paddle(s events.Side) *Paddle {
	return g.paddles[s]
}
