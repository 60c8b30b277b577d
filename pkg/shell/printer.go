package shell

import "strings"

// Printer renders a Change list as a block of shell source text the
// calling wrapper function evals. Implementations never see anything but
// Change: all product/resolver/environment knowledge stays upstream.
type Printer interface {
	Print(changes []Change) string
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// quoteSingle wraps s in single quotes for a POSIX-family shell (sh, zsh,
// csh), escaping any embedded single quote by closing the quote, emitting
// an escaped literal quote, and reopening it. Values are never passed
// through unquoted: a product's table file is not a trusted input for
// building shell text that's about to be eval'd.
func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
