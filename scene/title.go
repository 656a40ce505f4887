package scene

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// Scene names used with the manager
const (
	SceneTitle = "title"
	ScenePlay  = "play"
)

const titleBanner = "B A T T L E   P O N G"

// TitleScene is the start menu. The chaos toggle routes through a
// settings change request like every other mutation.
type TitleScene struct {
	manager  *Manager
	screen   tcell.Screen
	ctx      *engine.Context
	selected int
}

func NewTitleScene(manager *Manager, screen tcell.Screen, ctx *engine.Context) *TitleScene {
	return &TitleScene{manager: manager, screen: screen, ctx: ctx}
}

func (s *TitleScene) items() []string {
	chaos := "off"
	if s.ctx.Settings.Chaos().Enabled {
		chaos = "on"
	}
	return []string{
		"Play",
		fmt.Sprintf("Chaos mode: %s", chaos),
		"Exit",
	}
}

func (s *TitleScene) OnEnter() {}
func (s *TitleScene) OnExit()  {}

func (s *TitleScene) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	n := len(s.items())
	switch key.Key() {
	case tcell.KeyUp:
		s.selected = (s.selected + n - 1) % n
	case tcell.KeyDown:
		s.selected = (s.selected + 1) % n
	case tcell.KeyEnter:
		s.activate()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.manager.RequestQuit()
	case tcell.KeyRune:
		switch key.Rune() {
		case 'k':
			s.selected = (s.selected + n - 1) % n
		case 'j':
			s.selected = (s.selected + 1) % n
		case 'q':
			s.manager.RequestQuit()
		}
	}
}

func (s *TitleScene) activate() {
	switch s.selected {
	case 0:
		s.manager.SetScene(ScenePlay)
	case 1:
		enabled := s.ctx.Settings.Chaos().Enabled
		s.ctx.Bus.Emit(events.TypeSettingsChangeRequested, &events.SettingsChangeRequestedPayload{
			Section: settings.SectionChaos,
			Values:  map[string]any{"enabled": !enabled},
		})
	case 2:
		s.manager.RequestQuit()
	}
}

func (s *TitleScene) Update(time.Duration) {}

func (s *TitleScene) Draw() {
	s.screen.Clear()
	w, h := s.screen.Size()

	drawCentered(s.screen, w, h/4, titleBanner,
		tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	for i, item := range s.items() {
		style := tcell.StyleDefault
		text := "  " + item + "  "
		if i == s.selected {
			style = style.Reverse(true)
			text = "> " + item + " <"
		}
		drawCentered(s.screen, w, h/2+i*2, text, style)
	}

	drawCentered(s.screen, w, h-2, "arrows/jk move · enter select · q quit",
		tcell.StyleDefault.Dim(true))
	s.screen.Show()
}

func drawCentered(screen tcell.Screen, w, y int, text string, style tcell.Style) {
	x := (w - len([]rune(text))) / 2
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
