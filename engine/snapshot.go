package engine

import (
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// BallView is one ball's render state in field units
type BallView struct {
	ID       string
	X, Y     float64
	Radius   float64
	Rotation float64
}

// PaddleView is one paddle's render state in field units
type PaddleView struct {
	Side          events.Side
	X, Y          float64
	Width, Height float64
}

// FrameSnapshot is the read-only handoff the rendering collaborator
// consumes each frame. The renderer never reaches back into the core.
type FrameSnapshot struct {
	FieldWidth  float64
	FieldHeight float64

	Balls   []BallView
	Paddles [2]PaddleView

	Score    [2]int
	WinScore int
	State    State
	Winner   events.Side

	Sprites settings.Sprites
	Title   string
}

// Snapshot copies the current frame state for rendering
func (g *Game) Snapshot() FrameSnapshot {
	disp := g.ctx.Settings.Display()
	pcfg := g.ctx.Settings.Paddle()
	bcfg := g.ctx.Settings.Ball()

	snap := FrameSnapshot{
		FieldWidth:  float64(disp.Width),
		FieldHeight: float64(disp.Height),
		Score:       g.score,
		WinScore:    g.ctx.Settings.Match().WinScore,
		State:       g.state,
		Winner:      g.winner,
		Sprites:     g.ctx.Settings.Sprites(),
		Title:       disp.Title,
	}

	snap.Balls = make([]BallView, len(g.balls))
	for i, b := range g.balls {
		snap.Balls[i] = BallView{
			ID:       b.ID,
			X:        b.X,
			Y:        b.Y,
			Radius:   b.Radius(bcfg),
			Rotation: b.Rotation,
		}
	}

	for _, p := range g.paddles {
		snap.Paddles[p.Side] = PaddleView{
			Side:   p.Side,
			X:      p.X(pcfg, disp),
			Y:      p.Y,
			Width:  pcfg.Width,
			Height: pcfg.Height,
		}
	}

	return snap
}
