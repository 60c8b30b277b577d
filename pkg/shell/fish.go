package shell

import (
	"fmt"
	"strings"
)

// FishPrinter renders Changes for fish, whose variable scoping (`set
// -gx`), alias mechanism (a generated function, removed with `functions
// -e`), and quoting rules all differ from the other three shells.
type FishPrinter struct{}

func (FishPrinter) Print(changes []Change) string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		switch c.Kind {
		case Set:
			lines = append(lines, fmt.Sprintf("set -gx %s %s;", c.Name, quoteFish(c.Value)))
		case Unset:
			lines = append(lines, fmt.Sprintf("set -e %s;", c.Name))
		case Alias:
			lines = append(lines, fmt.Sprintf("alias %s %s;", c.Name, quoteFish(c.Value)))
		case Unalias:
			lines = append(lines, fmt.Sprintf("functions -e %s > /dev/null 2>&1; or true;", c.Name))
		}
	}
	return joinLines(lines)
}

// quoteFish single-quotes s for fish, whose single-quoted strings only
// treat `\` and `'` as special (unlike POSIX single quotes, which treat
// nothing as special).
func quoteFish(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return "'" + escaped + "'"
}
