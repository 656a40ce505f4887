package events

// Static name table for diagnostics and log output.
// Dispatch is keyed on the Type constant itself, never on names.
var typeNames = map[Type]string{
	TypeSettingsChangeRequested: "SettingsChangeRequested",
	TypeSettingsChanged:         "SettingsChanged",
	TypeDisplayRecreate:         "DisplayRecreate",
	TypeSpawnBallRequested:      "SpawnBallRequested",
	TypeBallHitPaddle:           "BallHitPaddle",
	TypeBallOut:                 "BallOut",
	TypeScoreChanged:            "ScoreChanged",
	TypeMatchOver:               "MatchOver",
	TypeRoundReset:              "RoundReset",
	TypeGameReset:               "GameReset",
	TypePowerupActivated:        "PowerupActivated",
	TypeSoundRequest:            "SoundRequest",
}

var nameTypes = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, n := range typeNames {
		m[n] = t
	}
	return m
}()

// Name returns the string name of t for logging
func Name(t Type) string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Unknown"
}

// TypeByName resolves an event type from its name
func TypeByName(name string) (Type, bool) {
	t, ok := nameTypes[name]
	return t, ok
}

func (t Type) String() string { return Name(t) }
