package scene

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/render"
	"github.com/K4zuy4/BattlePong-7/settings"
	"github.com/K4zuy4/BattlePong-7/systems"
)

type stubScene struct {
	enters, exits, updates int
}

func (s *stubScene) OnEnter()                { s.enters++ }
func (s *stubScene) OnExit()                 { s.exits++ }
func (s *stubScene) HandleEvent(tcell.Event) {}
func (s *stubScene) Update(time.Duration)    { s.updates++ }
func (s *stubScene) Draw()                   {}

func TestManagerSwitchCallsHooks(t *testing.T) {
	m := NewManager()
	a, b := &stubScene{}, &stubScene{}
	m.Register("a", a)
	m.Register("b", b)

	m.SetScene("a")
	assert.Equal(t, 1, a.enters)

	m.SetScene("b")
	assert.Equal(t, 1, a.exits)
	assert.Equal(t, 1, b.enters)

	// Switching to the active scene does nothing
	m.SetScene("b")
	assert.Equal(t, 1, b.enters)
}

func TestManagerGoBack(t *testing.T) {
	m := NewManager()
	a, b := &stubScene{}, &stubScene{}
	m.Register("a", a)
	m.Register("b", b)

	m.SetScene("a")
	m.SetScene("b")
	m.GoBack()

	assert.Equal(t, "a", m.Current())
	assert.Equal(t, 2, a.enters)

	// Empty history is a no-op
	m.GoBack()
	m.GoBack()
	assert.Equal(t, "a", m.Current())
}

func TestManagerRoutesToCurrentOnly(t *testing.T) {
	m := NewManager()
	a, b := &stubScene{}, &stubScene{}
	m.Register("a", a)
	m.Register("b", b)

	m.SetScene("a")
	m.Update(time.Millisecond)

	assert.Equal(t, 1, a.updates)
	assert.Zero(t, b.updates)
}

func newTitleRig(t *testing.T) (*Manager, *TitleScene, *engine.Context, *events.Bus) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	rec := &events.Recorder{}
	bus := events.NewBus(rec)
	store := settings.New(bus, rec)
	ctx := engine.NewContext(bus, store, rec)

	m := NewManager()
	title := NewTitleScene(m, screen, ctx)
	m.Register(SceneTitle, title)
	m.Register(ScenePlay, &stubScene{})
	m.SetScene(SceneTitle)
	return m, title, ctx, bus
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestTitleEnterOnPlaySwitchesScene(t *testing.T) {
	m, _, _, _ := newTitleRig(t)

	m.HandleEvent(key(tcell.KeyEnter, 0))
	assert.Equal(t, ScenePlay, m.Current())
}

func TestTitleChaosToggleRequestsSettingsChange(t *testing.T) {
	m, _, _, bus := newTitleRig(t)

	var got []events.Event
	bus.Subscribe(events.TypeSettingsChangeRequested, func(e events.Event) {
		got = append(got, e)
	})

	m.HandleEvent(key(tcell.KeyDown, 0))
	m.HandleEvent(key(tcell.KeyEnter, 0))

	require.Len(t, got, 1)
	p := got[0].Payload.(*events.SettingsChangeRequestedPayload)
	assert.Equal(t, settings.SectionChaos, p.Section)
	assert.Equal(t, true, p.Values["enabled"])
}

func TestTitleQuitKeys(t *testing.T) {
	m, _, _, _ := newTitleRig(t)

	m.HandleEvent(key(tcell.KeyRune, 'q'))
	assert.True(t, m.Quitting())
}

func TestPlayEscapeReturnsToTitle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	rec := &events.Recorder{}
	bus := events.NewBus(rec)
	store := settings.New(bus, rec)
	ctx := engine.NewContext(bus, store, rec)
	now := time.Unix(3000, 0)
	ctx.SetClock(func() time.Time { return now })

	game := engine.NewGame(ctx)
	powerups := systems.NewPowerupManager(ctx,
		game.Paddle(events.SideLeft), game.Paddle(events.SideRight))
	renderer := render.New(screen, systems.NewSkinSystem(ctx), bus)

	m := NewManager()
	m.Register(SceneTitle, NewTitleScene(m, screen, ctx))
	m.Register(ScenePlay, NewPlayScene(m, ctx, game, powerups, renderer))
	m.SetScene(SceneTitle)
	m.SetScene(ScenePlay)

	m.HandleEvent(key(tcell.KeyEscape, 0))
	m.Update(16 * time.Millisecond)

	assert.Equal(t, SceneTitle, m.Current(), "escape leaves the match")
	assert.False(t, m.Quitting(), "leaving the match must not quit the app")
	assert.Equal(t, engine.StatePaused, game.State(), "match pauses while on the title")
}

func TestTitleSelectionWraps(t *testing.T) {
	m, title, _, _ := newTitleRig(t)

	m.HandleEvent(key(tcell.KeyUp, 0))
	assert.Equal(t, len(title.items())-1, title.selected)

	m.HandleEvent(key(tcell.KeyDown, 0))
	assert.Equal(t, 0, title.selected)
}
