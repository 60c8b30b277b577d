package shell

import "github.com/RobertLuptonTheGood/eups/pkg/errors"

// ForName returns the Printer for the shell named by EUPS_SHELL
// (spec.md §6): one of "sh", "csh", "zsh", "fish". "bash" is accepted as
// a synonym for "sh" since it shares its export/unset syntax.
func ForName(name string) (Printer, error) {
	switch name {
	case "sh", "bash", "":
		return ShPrinter{}, nil
	case "zsh":
		return ZshPrinter{}, nil
	case "csh", "tcsh":
		return CshPrinter{}, nil
	case "fish":
		return FishPrinter{}, nil
	default:
		return nil, errors.Newf(errors.CodeUsage, "unsupported EUPS_SHELL %q: expected sh, csh, zsh, or fish", name)
	}
}
