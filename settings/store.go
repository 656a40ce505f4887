package settings

import (
	"sync"

	"github.com/samber/oops"

	"github.com/K4zuy4/BattlePong-7/events"
)

// Rejection describes one key/value pair that failed validation
type Rejection struct {
	Section string
	Key     string
	Value   any
	Err     error
}

// Store is the runtime settings store. Created once at startup, lives
// for the process lifetime, reset to defaults on GameReset.
type Store struct {
	mu       sync.RWMutex
	cur      sections
	defaults sections
	bus      *events.Bus
	reporter events.Reporter
}

// New creates a store seeded with built-in defaults.
// bus may be nil for isolated tests; change events are then skipped.
func New(bus *events.Bus, reporter events.Reporter) *Store {
	if reporter == nil {
		reporter = events.NopReporter{}
	}
	def := defaultSections()
	return &Store{
		cur:      def.clone(),
		defaults: def,
		bus:      bus,
		reporter: reporter,
	}
}

// Patch validates and applies one section patch key by key.
//
// Valid pairs are committed together: no read between Patch entry and
// return observes a half-applied patch. Invalid pairs are rejected
// individually, reported through the error side channel, and do not
// block the valid ones. An unknown section rejects the whole patch.
func (s *Store) Patch(section string, values map[string]any) (applied map[string]any, rejected []Rejection) {
	s.mu.Lock()

	staged := s.cur.clone()
	applied = make(map[string]any, len(values))

	for key, value := range values {
		normalized, err := applyKey(&staged, section, key, value)
		if err != nil {
			rejected = append(rejected, Rejection{Section: section, Key: key, Value: value, Err: err})
			continue
		}
		applied[key] = normalized
	}

	displayResized := staged.Display.Width != s.cur.Display.Width ||
		staged.Display.Height != s.cur.Display.Height

	if len(applied) > 0 {
		s.cur = staged
	}
	newDisplay := s.cur.Display
	s.mu.Unlock()

	for _, r := range rejected {
		s.reporter.Report(oops.
			Code("SETTINGS_INVALID_PATCH").
			With("section", r.Section).
			With("key", r.Key).
			With("value", r.Value).
			Wrap(r.Err))
	}

	if len(applied) > 0 && s.bus != nil {
		s.bus.Emit(events.TypeSettingsChanged, &events.SettingsChangedPayload{
			Section: section,
			Applied: applied,
		})
		if displayResized {
			s.bus.Emit(events.TypeDisplayRecreate, &events.DisplayRecreatePayload{
				Width:  newDisplay.Width,
				Height: newDisplay.Height,
			})
		}
	}

	return applied, rejected
}

func applyKey(dst *sections, section, key string, value any) (any, error) {
	switch section {
	case SectionDisplay:
		return patchDisplay(&dst.Display, key, value)
	case SectionPaddle:
		return patchPaddle(&dst.Paddle, key, value)
	case SectionBall:
		return patchBall(&dst.Ball, key, value)
	case SectionSprites:
		return patchSprites(&dst.Sprites, key, value)
	case SectionAudio:
		return patchAudio(&dst.Audio, key, value)
	case SectionMatch:
		return patchMatch(&dst.Match, key, value)
	case SectionChaos:
		return patchChaos(&dst.Chaos, key, value)
	}
	return nil, oops.Errorf("unknown section %q", section)
}

// Reset restores the startup defaults and announces every section
func (s *Store) Reset() {
	s.mu.Lock()
	prevDisplay := s.cur.Display
	s.cur = s.defaults.clone()
	cur := s.cur.clone()
	s.mu.Unlock()

	if s.bus == nil {
		return
	}
	for section, values := range sectionMaps(cur) {
		s.bus.Emit(events.TypeSettingsChanged, &events.SettingsChangedPayload{
			Section: section,
			Applied: values,
		})
	}
	if prevDisplay.Width != cur.Display.Width || prevDisplay.Height != cur.Display.Height {
		s.bus.Emit(events.TypeDisplayRecreate, &events.DisplayRecreatePayload{
			Width:  cur.Display.Width,
			Height: cur.Display.Height,
		})
	}
}

// Typed accessors return value copies. Entities call these every tick
// instead of caching, so live patches reach balls already in play.

func (s *Store) Display() Display {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Display
}

func (s *Store) Paddle() Paddle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Paddle
}

func (s *Store) Ball() Ball {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Ball
}

func (s *Store) Sprites() Sprites {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Sprites
}

func (s *Store) Audio() Audio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Audio
}

func (s *Store) Match() Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Match
}

func (s *Store) Chaos() Chaos {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.cur.Chaos
	c.Extra = make(map[string]float64, len(s.cur.Chaos.Extra))
	for k, v := range s.cur.Chaos.Extra {
		c.Extra[k] = v
	}
	return c
}

// Get reads a single key generically, falling back to def when the
// section/key is unknown. Hot paths use the typed accessors instead.
func (s *Store) Get(section, key string, def any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, ok := sectionMaps(s.cur)[section]
	if !ok {
		return def
	}
	if v, ok := values[key]; ok {
		return v
	}
	return def
}

// sectionMaps flattens the typed sections into the generic map shape
// used by Get, Reset announcements and the defaults file overlay
func sectionMaps(s sections) map[string]map[string]any {
	chaos := map[string]any{
		"interval_sec": s.Chaos.IntervalSec,
		"max_balls":    s.Chaos.MaxBalls,
		"enabled":      s.Chaos.Enabled,
	}
	for k, v := range s.Chaos.Extra {
		chaos[k] = v
	}
	return map[string]map[string]any{
		SectionDisplay: {
			"width":  s.Display.Width,
			"height": s.Display.Height,
			"title":  s.Display.Title,
			"fps":    s.Display.FPS,
		},
		SectionPaddle: {
			"width":    s.Paddle.Width,
			"height":   s.Paddle.Height,
			"speed":    s.Paddle.Speed,
			"margin_x": s.Paddle.MarginX,
		},
		SectionBall: {
			"size":                 s.Ball.Size,
			"speed":                s.Ball.Speed,
			"max_bounce_angle_deg": s.Ball.MaxBounceAngleDeg,
			"speed_growth":         s.Ball.SpeedGrowth,
			"max_speed":            s.Ball.MaxSpeed,
			"count_on_reset":       s.Ball.CountOnReset,
		},
		SectionSprites: {
			"ball_glyph":     s.Sprites.BallGlyph,
			"paddle_glyph":   s.Sprites.PaddleGlyph,
			"background":     s.Sprites.Background,
			"theme":          s.Sprites.Theme,
			"rotation_speed": s.Sprites.RotationSpeed,
		},
		SectionAudio: {
			"master_volume": s.Audio.MasterVolume,
			"sfx_volume":    s.Audio.SFXVolume,
		},
		SectionMatch: {
			"win_score": s.Match.WinScore,
		},
		SectionChaos: chaos,
	}
}
