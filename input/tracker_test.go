package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHeldWithinWindow(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.HandleKey(keyEvent('w'), now)

	snap := tr.Snapshot(now.Add(50 * time.Millisecond))
	if !snap.LeftUp {
		t.Errorf("key pressed 50ms ago should still be held")
	}

	snap = tr.Snapshot(now.Add(500 * time.Millisecond))
	if snap.LeftUp {
		t.Errorf("hold window should have expired")
	}
}

func TestRepeatRefreshesHold(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	tr.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now.Add(120*time.Millisecond))

	snap := tr.Snapshot(now.Add(200 * time.Millisecond))
	if !snap.RightUp {
		t.Errorf("repeat event should refresh the hold window")
	}
}

func TestOneShotLatches(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.HandleKey(keyEvent(' '), now)
	tr.HandleKey(keyEvent('r'), now)

	snap := tr.Snapshot(now)
	if !snap.SpawnBall || !snap.Restart {
		t.Fatalf("one-shot keys not latched: %+v", snap)
	}

	snap = tr.Snapshot(now)
	if snap.SpawnBall || snap.Restart {
		t.Errorf("one-shot keys must clear after a snapshot")
	}
}

func TestPauseAndQuitKeys(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.HandleKey(keyEvent('p'), now)
	if !tr.Snapshot(now).Pause {
		t.Errorf("p should request pause")
	}

	tr.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now)
	if !tr.Snapshot(now).Quit {
		t.Errorf("escape should request leaving the match")
	}

	tr.HandleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), now)
	if !tr.Snapshot(now).Quit {
		t.Errorf("ctrl-c should request quit")
	}
}
