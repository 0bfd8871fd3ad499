// Package output renders command results for terminals, pipes and scripts.
package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a command presents its result.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"     // text on a TTY, markdown otherwise
	ModeText     OutputMode = "text"     // styled terminal output
	ModeMarkdown OutputMode = "markdown" // plain, agent-friendly markdown
	ModeJSON     OutputMode = "json"
)

// Mode converts a configured value into an OutputMode. Unknown values fall
// back to ModeAuto.
func Mode(s string) OutputMode {
	switch m := OutputMode(s); m {
	case ModeText, ModeMarkdown, ModeJSON:
		return m
	default:
		return ModeAuto
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInputTerminal reports whether r reads from an interactive terminal.
func IsInputTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
