// Package terminal restores the terminal when the game dies abnormally.
// tcell's Fini handles the clean path; this package covers panics where
// the screen object may be unusable.
package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Escape sequences for a best-effort terminal reset
var resetSequences = [][]byte{
	[]byte("\x1b[?1003l"), // mouse motion tracking off
	[]byte("\x1b[?1002l"), // mouse drag tracking off
	[]byte("\x1b[?1000l"), // mouse click tracking off
	[]byte("\x1b[?1006l"), // SGR mouse mode off
	[]byte("\x1b[?25h"),   // show cursor
	[]byte("\x1b[?1049l"), // leave alternate screen
	[]byte("\x1b[0m"),     // reset attributes
	[]byte("\x1b[?7h"),    // auto-wrap on
}

// EmergencyReset writes raw reset sequences. Call from panic recovery
// when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequences {
		w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash resets the terminal and prints the stack trace, then
// exits nonzero. Intended as the outermost recover in main.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mcrash: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "stack trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a goroutine with crash recovery, so a panicking
// background task still resets the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
