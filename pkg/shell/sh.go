package shell

import "fmt"

// ShPrinter renders Changes for POSIX-family shells (sh, bash, zsh share
// this syntax; ZshPrinter in zsh.go embeds it).
type ShPrinter struct{}

func (ShPrinter) Print(changes []Change) string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		switch c.Kind {
		case Set:
			lines = append(lines, fmt.Sprintf("export %s=%s;", c.Name, quoteSingle(c.Value)))
		case Unset:
			lines = append(lines, fmt.Sprintf("unset %s;", c.Name))
		case Alias:
			lines = append(lines, fmt.Sprintf("alias %s=%s;", c.Name, quoteSingle(c.Value)))
		case Unalias:
			lines = append(lines, fmt.Sprintf("unalias %s > /dev/null 2>&1 || true;", c.Name))
		}
	}
	return joinLines(lines)
}
