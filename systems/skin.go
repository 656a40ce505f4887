package systems

import (
	"time"

	"github.com/K4zuy4/BattlePong-7/engine"
	"github.com/K4zuy4/BattlePong-7/events"
	"github.com/K4zuy4/BattlePong-7/settings"
)

// Skin is the resolved render appearance derived from the sprites
// section. The renderer reads it instead of re-deriving glyphs from raw
// settings every frame.
type Skin struct {
	BallRune   rune
	PaddleRune rune
	Background rune // 0 = plain background
	Theme      string
	Spin       bool // rotate the ball glyph while it travels
}

// SkinSystem keeps the active skin in sync with sprites/display
// settings changes announced on the bus
type SkinSystem struct {
	ctx  *engine.Context
	skin Skin
}

func NewSkinSystem(ctx *engine.Context) *SkinSystem {
	s := &SkinSystem{ctx: ctx}
	s.reload()
	ctx.Bus.Subscribe(events.TypeSettingsChanged, s.onSettingsChanged)
	return s
}

// Current returns the resolved skin
func (s *SkinSystem) Current() Skin {
	return s.skin
}

// Update is a no-op; the skin only changes with settings events
func (s *SkinSystem) Update(time.Duration) {}

func (s *SkinSystem) onSettingsChanged(e events.Event) {
	p, ok := e.Payload.(*events.SettingsChangedPayload)
	if !ok {
		return
	}
	if p.Section != settings.SectionSprites && p.Section != settings.SectionDisplay {
		return
	}
	s.reload()
}

func (s *SkinSystem) reload() {
	cfg := s.ctx.Settings.Sprites()

	skin := Skin{
		BallRune:   firstRune(cfg.BallGlyph, '●'),
		PaddleRune: firstRune(cfg.PaddleGlyph, '█'),
		Theme:      cfg.Theme,
		Spin:       cfg.RotationSpeed != 0,
	}
	if cfg.Background != "" {
		skin.Background = firstRune(cfg.Background, 0)
	}
	s.skin = skin
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
