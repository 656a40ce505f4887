package engine

import (
	"sort"
	"time"

	"github.com/K4zuy4/BattlePong-7/events"
)

type scheduled struct {
	due   time.Time
	seq   int
	event events.Event
}

// Scheduler holds deferred event records. Timed effects (powerup
// reverts, delayed spawns) are scheduled here and drained once per tick
// against the simulation clock; nothing ever blocks waiting for them.
type Scheduler struct {
	bus   *events.Bus
	now   func() time.Time
	items []scheduled
	seq   int
}

func NewScheduler(bus *events.Bus, now func() time.Time) *Scheduler {
	return &Scheduler{bus: bus, now: now}
}

// After schedules an event to publish once d has elapsed
func (s *Scheduler) After(d time.Duration, t events.Type, payload any) {
	s.seq++
	s.items = append(s.items, scheduled{
		due:   s.now().Add(d),
		seq:   s.seq,
		event: events.Event{Type: t, Payload: payload},
	})
}

// Drain publishes every record due at now, in due order (insertion
// order breaks ties), and removes it. Called once per tick.
func (s *Scheduler) Drain(now time.Time) {
	if len(s.items) == 0 {
		return
	}

	var due, rest []scheduled
	for _, it := range s.items {
		if !it.due.After(now) {
			due = append(due, it)
		} else {
			rest = append(rest, it)
		}
	}
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	// Swap in the remainder before publishing: a handler may schedule
	// follow-up records during dispatch
	s.items = rest
	for _, it := range due {
		ev := it.event
		ev.Timestamp = now
		s.bus.Publish(ev)
	}
}

// Clear drops all pending records (game reset)
func (s *Scheduler) Clear() {
	s.items = nil
}

// Pending returns the number of scheduled records
func (s *Scheduler) Pending() int {
	return len(s.items)
}
