// Package settings holds the live, patchable configuration store.
//
// Every gameplay constant lives here instead of in package-level globals.
// Entities read their constants through the store each tick, so a patch
// applied mid-match affects balls and paddles already in play. Mutation
// during play goes exclusively through Patch, driven by
// SettingsChangeRequested events (single-writer discipline).
package settings

// Section names accepted by Patch and Get
const (
	SectionDisplay = "display"
	SectionPaddle  = "paddle"
	SectionBall    = "ball"
	SectionSprites = "sprites"
	SectionAudio   = "audio"
	SectionMatch   = "match"
	SectionChaos   = "chaos"
)

// Display is the playfield surface in field units.
// Width/height changes additionally publish a DisplayRecreate event.
type Display struct {
	Width  int
	Height int
	Title  string
	FPS    int
}

// Paddle holds paddle physics constants shared by both sides
type Paddle struct {
	Width   float64
	Height  float64
	Speed   float64
	MarginX float64
}

// Ball holds ball physics constants shared by all live balls
type Ball struct {
	Size              float64
	Speed             float64
	MaxBounceAngleDeg float64
	SpeedGrowth       float64 // multiplicative factor applied per paddle hit
	MaxSpeed          float64 // escalation cap
	CountOnReset      int
}

// Sprites selects the terminal skin: glyphs, theme name, spin rate
type Sprites struct {
	BallGlyph     string
	PaddleGlyph   string
	Background    string
	Theme         string
	RotationSpeed float64 // degrees per second, cosmetic
}

// Audio holds mixer volumes
type Audio struct {
	MasterVolume float64
	SFXVolume    float64
}

// Match holds win conditions
type Match struct {
	WinScore int
}

// Chaos is the experimental section. Known keys are typed; anything
// else lands in Extra as a named scalar for one-off experiments.
type Chaos struct {
	IntervalSec float64
	MaxBalls    int
	Enabled     bool
	Extra       map[string]float64
}

type sections struct {
	Display Display
	Paddle  Paddle
	Ball    Ball
	Sprites Sprites
	Audio   Audio
	Match   Match
	Chaos   Chaos
}

func defaultSections() sections {
	return sections{
		Display: Display{
			Width:  160,
			Height: 48,
			Title:  "Battle Pong",
			FPS:    60,
		},
		Paddle: Paddle{
			Width:   2,
			Height:  8,
			Speed:   42,
			MarginX: 4,
		},
		Ball: Ball{
			Size:              2,
			Speed:             30,
			MaxBounceAngleDeg: 65,
			SpeedGrowth:       1.05,
			MaxSpeed:          90,
			CountOnReset:      1,
		},
		Sprites: Sprites{
			BallGlyph:     "●",
			PaddleGlyph:   "█",
			Background:    "",
			Theme:         "classic",
			RotationSpeed: 180,
		},
		Audio: Audio{
			MasterVolume: 1.0,
			SFXVolume:    1.0,
		},
		Match: Match{
			WinScore: 10,
		},
		Chaos: Chaos{
			IntervalSec: 7,
			MaxBalls:    16,
			Enabled:     false,
			Extra:       map[string]float64{},
		},
	}
}

func (s sections) clone() sections {
	out := s
	out.Chaos.Extra = make(map[string]float64, len(s.Chaos.Extra))
	for k, v := range s.Chaos.Extra {
		out.Chaos.Extra[k] = v
	}
	return out
}
