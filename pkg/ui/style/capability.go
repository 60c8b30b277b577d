package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled reports whether output is an interactive, color-capable
// terminal, honoring NO_COLOR, grounded on dodot's cmd/dodot/formatting.go
// isatty guard generalized with termenv's color-profile check.
func ColorEnabled(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
