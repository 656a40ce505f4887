// Package render draws frame snapshots onto a tcell screen. It scales
// field units to whatever cell grid the terminal offers and never
// touches game state.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/systems"
)

// spinFrames animate a rotating ball when the skin enables spin
var spinFrames = []rune{'◐', '◓', '◑', '◒'}

// Renderer owns the screen surface. A display recreate event forces a
// full sync on the next frame so stale cells from the old geometry
// cannot linger.
type Renderer struct {
	screen    tcell.Screen
	skins     *systems.SkinSystem
	needsSync bool
}

func New(screen tcell.Screen, skins *systems.SkinSystem, bus *events.Bus) *Renderer {
	r := &Renderer{screen: screen, skins: skins}
	bus.Subscribe(events.TypeDisplayRecreate, func(events.Event) {
		r.needsSync = true
	})
	return r
}

// Resize marks the surface dirty after a terminal resize event
func (r *Renderer) Resize() {
	r.needsSync = true
}

// Draw renders one snapshot and flips the screen
func (r *Renderer) Draw(snap engine.FrameSnapshot) {
	if r.needsSync {
		r.screen.Sync()
		r.needsSync = false
	}
	r.screen.Clear()

	w, h := r.screen.Size()
	if w < 4 || h < 4 {
		r.screen.Show()
		return
	}

	skin := r.skins.Current()
	th := themeStyles(skin.Theme)

	// Top row is the HUD, the rest is the field
	fieldTop := 1
	sx := float64(w) / snap.FieldWidth
	sy := float64(h-fieldTop) / snap.FieldHeight

	if skin.Background != 0 {
		for y := fieldTop; y < h; y++ {
			for x := 0; x < w; x++ {
				r.screen.SetContent(x, y, skin.Background, nil, th.background)
			}
		}
	}

	// Center line
	cx := w / 2
	for y := fieldTop; y < h; y += 2 {
		r.screen.SetContent(cx, y, '╎', nil, th.net)
	}

	for _, p := range snap.Paddles {
		r.drawPaddle(p, sx, sy, fieldTop, th)
	}
	for _, b := range snap.Balls {
		r.drawBall(b, skin, sx, sy, fieldTop, th)
	}

	r.drawHUD(snap, w, th)

	switch snap.State {
	case engine.StatePaused:
		r.drawBanner(w, h, "PAUSED", th.overlay)
	case engine.StateGameOver:
		msg := fmt.Sprintf("%s WINS  %d : %d  (r to restart)",
			snap.Winner, snap.Score[0], snap.Score[1])
		r.drawBanner(w, h, msg, th.overlay)
	}

	r.screen.Show()
}

func (r *Renderer) drawPaddle(p engine.PaddleView, sx, sy float64, top int, th theme) {
	skin := r.skins.Current()
	x0 := int(p.X * sx)
	y0 := top + int(p.Y*sy)
	cellsW := max(1, int(p.Width*sx))
	cellsH := max(1, int(p.Height*sy))

	style := th.left
	if p.Side == events.SideRight {
		style = th.right
	}
	for dy := 0; dy < cellsH; dy++ {
		for dx := 0; dx < cellsW; dx++ {
			r.screen.SetContent(x0+dx, y0+dy, skin.PaddleRune, nil, style)
		}
	}
}

func (r *Renderer) drawBall(b engine.BallView, skin systems.Skin, sx, sy float64, top int, th theme) {
	glyph := skin.BallRune
	if skin.Spin {
		frame := int(b.Rotation/90) % len(spinFrames)
		if frame < 0 {
			frame += len(spinFrames)
		}
		glyph = spinFrames[frame]
	}

	x := int(b.X * sx)
	y := top + int(b.Y*sy)
	r.screen.SetContent(x, y, glyph, nil, th.ball)

	// Oversized balls get a halo so chaos growth is visible on a grid
	if b.Radius >= 2 {
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r.screen.SetContent(x+d[0], y+d[1], '·', nil, th.ball)
		}
	}
}

func (r *Renderer) drawHUD(snap engine.FrameSnapshot, w int, th theme) {
	left := fmt.Sprintf("%d", snap.Score[0])
	right := fmt.Sprintf("%d", snap.Score[1])
	title := fmt.Sprintf("%s · first to %d", snap.Title, snap.WinScore)

	r.drawText(2, 0, left, th.left)
	r.drawText(w-2-len(right), 0, right, th.right)
	r.drawText((w-len(title))/2, 0, title, th.hud)
}

func (r *Renderer) drawBanner(w, h int, msg string, style tcell.Style) {
	y := h / 2
	x := (w - len(msg)) / 2
	r.drawText(x-1, y, " "+msg+" ", style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
