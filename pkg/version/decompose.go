// Package version implements version string decomposition, comparison, and
// the version-expression grammar shared by CLI requests and table-file
// conditionals.
package version

import "strings"

// Decompose splits a version string into its three canonical components:
//
//	VVV   the base release name, e.g. "1.2.3"
//	EEE   an optional decrementing annotation, e.g. "rc1" from "1.2.3-rc1"
//	FFF   an optional incrementing annotation, e.g. "patch1" from "1.2.3+patch1"
//
// A version string containing more than one unescaped '-' (e.g.
// "rel-0-8-2") is not decomposed at all: the whole string becomes VVV with
// EEE and FFF empty. This mirrors the original implementation's guard
// against misparsing calendar- or hyphen-heavy version names.
func Decompose(v string) (vvv, eee, fff string) {
	if v == "" {
		return "", "", ""
	}

	if strings.Count(v, "-") > 1 {
		return v, "", ""
	}

	vvv, eee, fff = splitPrimary(v)

	if eee == "" && fff == "" {
		if suffix, e, f, base := splitLegacySuffix(v); suffix != "" {
			return base, e, f
		}
	}

	return vvv, eee, fff
}

// splitPrimary implements the regex
// ^([^-+]+)((-)([^-+]+))?((\+)([^-+]+))?
// by hand: VVV is everything up to the first '-' or '+' not already
// consumed; EEE follows a single '-'; FFF follows a single '+'.
func splitPrimary(v string) (vvv, eee, fff string) {
	dash := strings.IndexByte(v, '-')
	plus := strings.IndexByte(v, '+')

	switch {
	case dash >= 0 && (plus < 0 || dash < plus):
		vvv = v[:dash]
		rest := v[dash+1:]
		if p := strings.IndexByte(rest, '+'); p >= 0 {
			eee = rest[:p]
			fff = rest[p+1:]
		} else {
			eee = rest
		}
	case plus >= 0:
		vvv = v[:plus]
		fff = v[plus+1:]
	default:
		vvv = v
	}
	return vvv, eee, fff
}

// splitLegacySuffix recognizes the legacy "VVVm#"/"VVVp#" spelling of
// decrement/increment annotations (e.g. "1.2.3m1" meaning "1.2.3-1",
// "1.2.3p2" meaning "1.2.3+2").
func splitLegacySuffix(v string) (suffix, eee, fff, base string) {
	for i := len(v) - 1; i >= 0; i-- {
		c := v[i]
		if c < '0' || c > '9' {
			if i == len(v)-1 {
				return "", "", "", v
			}
			digits := v[i+1:]
			switch c {
			case 'm':
				return v[i:], digits, "", v[:i]
			case 'p':
				return v[i:], "", digits, v[:i]
			default:
				return "", "", "", v
			}
		}
	}
	return "", "", "", v
}
