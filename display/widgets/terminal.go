package widgets

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// TerminalWidth returns the width in columns of the terminal attached to f,
// or the fallback when f is not a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}
	w, _, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
