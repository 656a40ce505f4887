// Package scene routes terminal events and frame time to whichever
// screen of the game is active: the title menu or the match itself.
package scene

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Scene is one screen of the application
type Scene interface {
	OnEnter()
	OnExit()
	HandleEvent(ev tcell.Event)
	Update(dt time.Duration)
	Draw()
}

// Manager holds registered scenes by name and keeps a history stack so
// a scene can return to whatever activated it
type Manager struct {
	scenes  map[string]Scene
	current string
	history []string
	quit    bool
}

func NewManager() *Manager {
	return &Manager{scenes: make(map[string]Scene)}
}

// Register adds a scene under a name; later registrations replace
func (m *Manager) Register(name string, s Scene) {
	m.scenes[name] = s
}

// SetScene switches to the named scene. Switching to the active scene
// is a no-op; the previous scene is pushed on the history stack.
func (m *Manager) SetScene(name string) {
	if m.current == name {
		return
	}
	if cur, ok := m.scenes[m.current]; ok {
		cur.OnExit()
		m.history = append(m.history, m.current)
	}
	m.current = name
	if next, ok := m.scenes[name]; ok {
		next.OnEnter()
	}
}

// GoBack returns to the previously active scene, if any
func (m *Manager) GoBack() {
	if len(m.history) == 0 {
		return
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	if cur, ok := m.scenes[m.current]; ok {
		cur.OnExit()
	}
	m.current = prev
	if next, ok := m.scenes[prev]; ok {
		next.OnEnter()
	}
}

// RequestQuit asks the outer loop to stop after this frame
func (m *Manager) RequestQuit() { m.quit = true }

// Quitting reports whether a scene requested shutdown
func (m *Manager) Quitting() bool { return m.quit }

// Current returns the active scene name
func (m *Manager) Current() string { return m.current }

func (m *Manager) HandleEvent(ev tcell.Event) {
	if s, ok := m.scenes[m.current]; ok {
		s.HandleEvent(ev)
	}
}

func (m *Manager) Update(dt time.Duration) {
	if s, ok := m.scenes[m.current]; ok {
		s.Update(dt)
	}
}

func (m *Manager) Draw() {
	if s, ok := m.scenes[m.current]; ok {
		s.Draw()
	}
}
