package settings

import (
	"errors"
	"fmt"
)

var errUnknownKey = errors.New("unknown key")

// themes the renderer knows how to draw
var validThemes = map[string]bool{
	"classic": true,
	"neon":    true,
	"mono":    true,
}

// asFloat coerces the numeric types a yaml file or an event payload
// can plausibly carry
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func positiveFloat(v any) (float64, error) {
	f, ok := asFloat(v)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	if f <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", f)
	}
	return f, nil
}

func positiveInt(v any) (int, error) {
	n, ok := asInt(v)
	if !ok {
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func unitFloat(v any) (float64, error) {
	f, ok := asFloat(v)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("must be in [0,1], got %v", f)
	}
	return f, nil
}

func nonEmptyString(v any) (string, error) {
	s, ok := asString(v)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	if s == "" {
		return "", errors.New("must not be empty")
	}
	return s, nil
}

// Per-section patch application. Each function validates one key/value
// pair against the target copy and returns the normalized value that was
// stored. The copy is only committed by the store once every valid key
// of the patch has been staged.

func patchDisplay(d *Display, key string, v any) (any, error) {
	switch key {
	case "width":
		n, err := positiveInt(v)
		if err != nil {
			return nil, err
		}
		d.Width = n
		return n, nil
	case "height":
		n, err := positiveInt(v)
		if err != nil {
			return nil, err
		}
		d.Height = n
		return n, nil
	case "title":
		s, err := nonEmptyString(v)
		if err != nil {
			return nil, err
		}
		d.Title = s
		return s, nil
	case "fps":
		n, err := positiveInt(v)
		if err != nil {
			return nil, err
		}
		if n > 240 {
			return nil, fmt.Errorf("fps above 240 is not renderable, got %d", n)
		}
		d.FPS = n
		return n, nil
	}
	return nil, errUnknownKey
}

func patchPaddle(p *Paddle, key string, v any) (any, error) {
	switch key {
	case "width":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		p.Width = f
		return f, nil
	case "height":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		p.Height = f
		return f, nil
	case "speed":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		p.Speed = f
		return f, nil
	case "margin_x":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		p.MarginX = f
		return f, nil
	}
	return nil, errUnknownKey
}

func patchBall(b *Ball, key string, v any) (any, error) {
	switch key {
	case "size":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		b.Size = f
		return f, nil
	case "speed":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		b.Speed = f
		return f, nil
	case "max_bounce_angle_deg":
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", v)
		}
		if f < 0 || f >= 90 {
			return nil, fmt.Errorf("must be in [0,90), got %v", f)
		}
		b.MaxBounceAngleDeg = f
		return f, nil
	case "speed_growth":
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", v)
		}
		if f < 1 {
			return nil, fmt.Errorf("growth below 1 would decay, got %v", f)
		}
		b.SpeedGrowth = f
		return f, nil
	case "max_speed":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		b.MaxSpeed = f
		return f, nil
	case "count_on_reset":
		n, err := positiveInt(v)
		if err != nil {
			return nil, err
		}
		b.CountOnReset = n
		return n, nil
	}
	return nil, errUnknownKey
}

func patchSprites(s *Sprites, key string, v any) (any, error) {
	switch key {
	case "ball_glyph":
		g, err := nonEmptyString(v)
		if err != nil {
			return nil, err
		}
		s.BallGlyph = g
		return g, nil
	case "paddle_glyph":
		g, err := nonEmptyString(v)
		if err != nil {
			return nil, err
		}
		s.PaddleGlyph = g
		return g, nil
	case "background":
		// Empty clears the background pattern
		g, ok := asString(v)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		s.Background = g
		return g, nil
	case "theme":
		g, err := nonEmptyString(v)
		if err != nil {
			return nil, err
		}
		if !validThemes[g] {
			return nil, fmt.Errorf("unknown theme %q", g)
		}
		s.Theme = g
		return g, nil
	case "rotation_speed":
		f, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", v)
		}
		s.RotationSpeed = f
		return f, nil
	}
	return nil, errUnknownKey
}

func patchAudio(a *Audio, key string, v any) (any, error) {
	switch key {
	case "master_volume":
		f, err := unitFloat(v)
		if err != nil {
			return nil, err
		}
		a.MasterVolume = f
		return f, nil
	case "sfx_volume":
		f, err := unitFloat(v)
		if err != nil {
			return nil, err
		}
		a.SFXVolume = f
		return f, nil
	}
	return nil, errUnknownKey
}

func patchMatch(m *Match, key string, v any) (any, error) {
	switch key {
	case "win_score":
		n, err := positiveInt(v)
		if err != nil {
			return nil, err
		}
		m.WinScore = n
		return n, nil
	}
	return nil, errUnknownKey
}

func patchChaos(c *Chaos, key string, v any) (any, error) {
	switch key {
	case "interval_sec":
		f, err := positiveFloat(v)
		if err != nil {
			return nil, err
		}
		c.IntervalSec = f
		return f, nil
	case "max_balls":
		n, err := positiveInt(v)
		if err != nil {
			return nil, err
		}
		c.MaxBalls = n
		return n, nil
	case "enabled":
		b, ok := asBool(v)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		c.Enabled = b
		return b, nil
	}
	// Experimental scalars accept any numeric value under any name
	f, ok := asFloat(v)
	if !ok {
		return nil, fmt.Errorf("experimental key %q expects a number, got %T", key, v)
	}
	c.Extra[key] = f
	return f, nil
}
