package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/K4zuy4/BattlePong-7/constants"
)

// action is an internal movement identifier
type action uint8

const (
	actLeftUp action = iota
	actLeftDown
	actRightUp
	actRightDown
	actionCount
)

// Tracker converts tcell key events into Snapshot values.
//
// Terminals deliver key presses and OS key-repeat, never key-up. A
// movement key therefore counts as held for InputHoldWindow after its
// last press; repeat events keep refreshing the window while the key
// stays physically down. One-shot keys latch until the next Snapshot.
type Tracker struct {
	lastPress [actionCount]time.Time

	spawn   bool
	restart bool
	pause   bool
	quit    bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// HandleKey records one terminal key event
func (t *Tracker) HandleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		t.lastPress[actRightUp] = now
		return
	case tcell.KeyDown:
		t.lastPress[actRightDown] = now
		return
	case tcell.KeyEscape:
		t.quit = true
		return
	case tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'w', 'W':
		t.lastPress[actLeftUp] = now
	case 's', 'S':
		t.lastPress[actLeftDown] = now
	case ' ':
		t.spawn = true
	case 'r', 'R':
		t.restart = true
	case 'p', 'P':
		t.pause = true
	case 'q', 'Q':
		t.quit = true
	}
}

// Snapshot returns the current input state and clears one-shot latches
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	held := func(a action) bool {
		p := t.lastPress[a]
		return !p.IsZero() && now.Sub(p) <= constants.InputHoldWindow
	}

	s := Snapshot{
		LeftUp:    held(actLeftUp),
		LeftDown:  held(actLeftDown),
		RightUp:   held(actRightUp),
		RightDown: held(actRightDown),
		SpawnBall: t.spawn,
		Restart:   t.restart,
		Pause:     t.pause,
		Quit:      t.quit,
	}

	t.spawn = false
	t.restart = false
	t.pause = false
	t.quit = false
	return s
}
