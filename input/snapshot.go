// Package input produces the per-tick input snapshot the simulation
// consumes. The core never touches the terminal; it only reads Snapshot.
package input

// Snapshot is the abstract input state for one tick.
// Held states are approximated by the terminal adapter (see Tracker);
// one-shot states trigger once per press.
type Snapshot struct {
	// Held
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool

	// One-shot
	SpawnBall bool
	Restart   bool
	Pause     bool
	Quit      bool
}
