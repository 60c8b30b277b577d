package shell

import "fmt"

// CshPrinter renders Changes for csh/tcsh, whose builtins (setenv,
// unsetenv) and alias syntax differ from the Bourne family.
type CshPrinter struct{}

func (CshPrinter) Print(changes []Change) string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		switch c.Kind {
		case Set:
			lines = append(lines, fmt.Sprintf("setenv %s %s;", c.Name, quoteSingle(c.Value)))
		case Unset:
			lines = append(lines, fmt.Sprintf("unsetenv %s;", c.Name))
		case Alias:
			lines = append(lines, fmt.Sprintf("alias %s %s;", c.Name, quoteSingle(c.Value)))
		case Unalias:
			lines = append(lines, fmt.Sprintf("unalias %s;", c.Name))
		}
	}
	return joinLines(lines)
}
