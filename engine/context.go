// Package engine owns the simulation: entities, the fixed-tick
// orchestrator, deferred event scheduling and render snapshots.
package engine

import (
	"math/rand"
	"time"

	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// Context bundles the shared collaborators every entity and system is
// constructed with. It is an explicit dependency, never a global.
type Context struct {
	Bus       *events.Bus
	Settings  *settings.Store
	Reporter  events.Reporter
	Scheduler *Scheduler
	Rand      *rand.Rand

	now func() time.Time
}

// NewContext wires a context around the given bus and settings store
func NewContext(bus *events.Bus, store *settings.Store, reporter events.Reporter) *Context {
	if reporter == nil {
		reporter = events.NopReporter{}
	}
	ctx := &Context{
		Bus:      bus,
		Settings: store,
		Reporter: reporter,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	ctx.Scheduler = NewScheduler(bus, ctx.Now)
	return ctx
}

// Now returns the current simulation time
func (c *Context) Now() time.Time {
	return c.now()
}

// SetClock replaces the time source. Tests use this to step timed
// effects deterministically.
func (c *Context) SetClock(now func() time.Time) {
	c.now = now
}

// Seed reseeds the context RNG for reproducible runs
func (c *Context) Seed(seed int64) {
	c.Rand = rand.New(rand.NewSource(seed))
}
