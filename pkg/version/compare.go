package version

import (
	"strconv"
	"strings"
)

// Compare orders two version strings. It returns -1, 0, or +1 exactly as
// sort.Slice / cmp.Compare expect, satisfying the testable properties in
// spec.md §8: antisymmetry (Compare(a,b) == -Compare(b,a)) and transitivity
// on the strict ordering.
//
// Algorithm (spec.md §4.1):
//  1. VVV compared lexicographic-by-component (split on '.'/'_', integer
//     compare when both parse, else string compare); a leading non-numeric
//     prefix on the first component must agree between both sides.
//  2. If VVV equal: EEE sorts left of its absence; if both sides have EEE,
//     recurse into the whole algorithm on the EEE substrings.
//  3. FFF sorts right of its absence; recurse on FFF the same way.
func Compare(v1, v2 string) int {
	vvv1, eee1, fff1 := Decompose(v1)
	vvv2, eee2, fff2 := Decompose(v2)

	if c := compareVVV(vvv1, vvv2); c != 0 {
		return c
	}

	if c := compareAnnotation(eee1, eee2, true); c != 0 {
		return c
	}

	return compareAnnotation(fff1, fff2, false)
}

// compareAnnotation compares the EEE or FFF component. leftSortsLower
// selects EEE's rule (present sorts left/lower than absent) vs FFF's rule
// (present sorts right/higher than absent).
func compareAnnotation(a, b string, leftSortsLower bool) int {
	switch {
	case a == "" && b == "":
		return 0
	case a != "" && b == "":
		if leftSortsLower {
			return -1
		}
		return 1
	case a == "" && b != "":
		if leftSortsLower {
			return 1
		}
		return -1
	default:
		return Compare(a, b)
	}
}

func compareVVV(v1, v2 string) int {
	c1 := splitComponents(v1)
	c2 := splitComponents(v2)

	if len(c1) > 0 && len(c2) > 0 {
		p1 := leadingNonNumericPrefix(c1[0])
		p2 := leadingNonNumericPrefix(c2[0])
		if p1 != p2 {
			switch {
			case p2 == "" && p1 != "":
				// v1 carries an unmatched leading prefix: sorts low.
				return -1
			case p1 == "" && p2 != "":
				return 1
			default:
				if c1[0] != c2[0] {
					return strings.Compare(c1[0], c2[0])
				}
			}
		}
	}

	n := len(c1)
	if len(c2) < n {
		n = len(c2)
	}

	for i := 0; i < n; i++ {
		if c := compareComponent(c1[i], c2[i]); c != 0 {
			return c
		}
	}

	// Shorter common-prefix version sorts low.
	return compareInt(len(c1), len(c2))
}

func splitComponents(s string) []string {
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '_' })
}

func leadingNonNumericPrefix(s string) string {
	for i, r := range s {
		if r >= '0' && r <= '9' {
			return s[:i]
		}
	}
	return s
}

func compareComponent(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return compareInt(ai, bi)
	}
	return strings.Compare(a, b)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether v1 sorts strictly before v2.
func Less(v1, v2 string) bool { return Compare(v1, v2) < 0 }

// Equal reports whether v1 and v2 are equivalent versions.
func Equal(v1, v2 string) bool { return Compare(v1, v2) == 0 }

// Max returns the higher of two versions.
func Max(v1, v2 string) string {
	if Compare(v1, v2) >= 0 {
		return v1
	}
	return v2
}
