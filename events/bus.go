// Package events provides the typed publish/subscribe bus that decouples
// gameplay systems.
//
// Delivery contract:
//   - Publish is synchronous: every handler subscribed to the event's type
//     at the moment Publish is entered runs before Publish returns.
//   - Handlers run in subscription order.
//   - A handler may publish further events; nested publishes complete
//     depth-first before the outer publish moves to its next handler.
//   - Subscribe/Unsubscribe during dispatch take effect on the next publish
//     of that type, never on the in-flight delivery pass.
//   - A handler panic is recovered and reported; remaining handlers for the
//     same publish still run.
//   - Publishing a type with zero subscribers is a no-op.
package events

import (
	"sync"
	"time"

	"github.com/samber/oops"
)

// Handler processes one event
type Handler func(Event)

// Subscription identifies one registered handler for Unsubscribe
type Subscription struct {
	id int
	t  Type
}

type entry struct {
	id int
	fn Handler
}

// Bus is the process-scoped event dispatcher.
// Single-threaded use is the norm; the mutex only guards registry
// bookkeeping so a stray goroutine cannot corrupt the handler lists.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]entry
	nextID   int
	reporter Reporter
}

// NewBus creates a bus reporting failures to r. A nil reporter discards.
func NewBus(r Reporter) *Bus {
	if r == nil {
		r = NopReporter{}
	}
	return &Bus{
		handlers: make(map[Type][]entry),
		reporter: r,
	}
}

// Subscribe registers fn for events of type t and returns its handle
func (b *Bus) Subscribe(t Type, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	// Copy-on-write keeps slices held by in-flight publishes intact
	prev := b.handlers[t]
	next := make([]entry, len(prev), len(prev)+1)
	copy(next, prev)
	b.handlers[t] = append(next, entry{id: id, fn: fn})

	return Subscription{id: id, t: t}
}

// Unsubscribe removes the handler behind sub.
// Removing an unknown or already-removed handle is a no-op.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.handlers[sub.t]
	for i, e := range prev {
		if e.id == sub.id {
			next := make([]entry, 0, len(prev)-1)
			next = append(next, prev[:i]...)
			next = append(next, prev[i+1:]...)
			b.handlers[sub.t] = next
			return
		}
	}
}

// Publish delivers e to all current subscribers of e.Type.
// See the package comment for the full delivery contract.
func (b *Bus) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	b.mu.RLock()
	list := b.handlers[e.Type]
	b.mu.RUnlock()

	for _, h := range list {
		b.invoke(h, e)
	}
}

// Emit is shorthand building the Event envelope from type and payload
func (b *Bus) Emit(t Type, payload any) {
	b.Publish(Event{Type: t, Payload: payload})
}

func (b *Bus) invoke(h entry, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.reporter.Report(oops.
				Code("BUS_SUBSCRIBER_PANIC").
				With("event", Name(e.Type)).
				With("panic", r).
				Errorf("subscriber panicked during dispatch"))
		}
	}()
	h.fn(e)
}

// SubscriberCount returns the number of handlers registered for t
func (b *Bus) SubscriberCount(t Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[t])
}
