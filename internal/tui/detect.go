package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents how command output is rendered.
type Mode int

const (
	// ModePlain is used for pipes, files, CI logs, and NO_COLOR.
	ModePlain Mode = iota
	// ModeStyled is used when a human is reading a terminal.
	ModeStyled
)

// DetectMode decides how output written to w should be rendered.
//
// Returns ModePlain if:
//   - TRACESCHEMA_PLAIN=1 is set
//   - CI is set
//   - NO_COLOR is set
//   - w is not a terminal
func DetectMode(w io.Writer) Mode {
	if os.Getenv("TRACESCHEMA_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeStyled
}
