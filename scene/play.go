package scene

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/input"
	"github.com/K4zuy4/BattlePong-7/render"
	"github.com/K4zuy4/BattlePong-7/systems"
)

// PlayScene runs the match: it feeds tracked input into the game step
// and hands the resulting snapshot to the renderer. Leaving the scene
// pauses the match; the game keeps its state for when play resumes.
type PlayScene struct {
	manager  *Manager
	ctx      *engine.Context
	game     *engine.Game
	tracker  *input.Tracker
	powerups *systems.PowerupManager
	renderer *render.Renderer
}

func NewPlayScene(manager *Manager, ctx *engine.Context, game *engine.Game,
	powerups *systems.PowerupManager, renderer *render.Renderer) *PlayScene {
	return &PlayScene{
		manager:  manager,
		ctx:      ctx,
		game:     game,
		tracker:  input.NewTracker(),
		powerups: powerups,
		renderer: renderer,
	}
}

func (s *PlayScene) OnEnter() { s.game.SetPaused(false) }
func (s *PlayScene) OnExit()  { s.game.SetPaused(true) }

func (s *PlayScene) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case '1':
				s.powerups.Activate(systems.PowerupBigPaddle)
				return
			case '2':
				s.powerups.Activate(systems.PowerupMultiball)
				return
			}
		}
		s.tracker.HandleKey(ev, s.ctx.Now())
	case *tcell.EventResize:
		s.renderer.Resize()
	}
}

func (s *PlayScene) Update(dt time.Duration) {
	snap := s.tracker.Snapshot(s.ctx.Now())
	if snap.Quit {
		// Escape leaves the match; quitting the app is the title's job
		s.manager.SetScene(SceneTitle)
		return
	}
	if snap.Pause {
		s.game.SetPaused(s.game.State() != engine.StatePaused)
	}
	s.game.Step(dt, snap)
}

func (s *PlayScene) Draw() {
	s.renderer.Draw(s.game.Snapshot())
}
