package events

// Side identifies a player half of the field
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// SettingsChangeRequestedPayload carries one proposed section patch
type SettingsChangeRequestedPayload struct {
	Section string
	Values  map[string]any
}

// SettingsChangedPayload carries the applied subset of a committed patch
type SettingsChangedPayload struct {
	Section string
	Applied map[string]any
}

// DisplayRecreatePayload carries the new surface dimensions
type DisplayRecreatePayload struct {
	Width  int
	Height int
}

// SpawnBallRequestedPayload requests new balls
// Speed 0 means "use current settings speed"
type SpawnBallRequestedPayload struct {
	Count int
	Speed float64
}

// BallHitPaddlePayload identifies the deflecting paddle and ball
type BallHitPaddlePayload struct {
	Paddle Side
	BallID string
}

// BallOutPayload identifies the exiting ball and the conceding side
type BallOutPayload struct {
	BallID   string
	Conceded Side
}

// ScoreChangedPayload carries the scoring side and its new total
type ScoreChangedPayload struct {
	Side  Side
	Value int
}

// MatchOverPayload identifies the winner
type MatchOverPayload struct {
	Winner Side
	Score  [2]int
}

// PowerupActivatedPayload names the consumed powerup
type PowerupActivatedPayload struct {
	Name string
}

// SoundRequestPayload asks for a synthesized tone
type SoundRequestPayload struct {
	Freq       float64
	DurationMs int
}
