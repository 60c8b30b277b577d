package version

import (
	"strings"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
)

// Op is a relational operator usable in a version-expression primary.
type Op string

const (
	OpEQ Op = "=="
	OpNE Op = "!="
	OpLT Op = "<"
	OpLE Op = "<="
	OpGT Op = ">"
	OpGE Op = ">="
)

// Primary is a single "<op> <version>" relation, or a bare version string
// (implying OpEQ).
type Primary struct {
	Op      Op
	Operand string
}

func (p Primary) matches(v string) bool {
	c := Compare(v, p.Operand)
	switch p.Op {
	case OpEQ:
		return c == 0
	case OpNE:
		return c != 0
	case OpLT:
		return c < 0
	case OpLE:
		return c <= 0
	case OpGT:
		return c > 0
	case OpGE:
		return c >= 0
	default:
		return false
	}
}

// Expression is a "||"-separated list of Primary relations. A version
// matches the Expression iff it matches any one Primary (spec.md §4.1).
type Expression struct {
	Primaries []Primary
}

// ParseExpression parses a version-expression string such as
// ">= 3.450 || == 2.0". FLAVOR and BUILD terminals, if present, are left
// as literal operand text; Expression does not substitute them (table-file
// `if` conditionals are parsed and evaluated by pkg/table instead).
func ParseExpression(s string) (*Expression, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return &Expression{}, nil
	}

	var primaries []Primary
	for _, part := range strings.Split(s, "||") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.Newf(errors.CodeUsage, "empty primary in version expression %q", s)
		}
		p, err := parsePrimary(part)
		if err != nil {
			return nil, err
		}
		primaries = append(primaries, p)
	}
	return &Expression{Primaries: primaries}, nil
}

func parsePrimary(s string) (Primary, error) {
	ops := []Op{OpGE, OpLE, OpNE, OpEQ, OpGT, OpLT} // longest operators first
	for _, op := range ops {
		if strings.HasPrefix(s, string(op)) {
			operand := strings.TrimSpace(s[len(op):])
			if operand == "" {
				return Primary{}, errors.Newf(errors.CodeUsage, "missing operand in %q", s)
			}
			return Primary{Op: op, Operand: operand}, nil
		}
	}
	// Bare version string implies ==.
	return Primary{Op: OpEQ, Operand: s}, nil
}

// Matches reports whether v satisfies the expression. An empty Expression
// (no primaries) matches everything.
func (e *Expression) Matches(v string) bool {
	if e == nil || len(e.Primaries) == 0 {
		return true
	}
	for _, p := range e.Primaries {
		if p.matches(v) {
			return true
		}
	}
	return false
}

// String renders the expression back to its canonical textual form.
func (e *Expression) String() string {
	if e == nil || len(e.Primaries) == 0 {
		return ""
	}
	parts := make([]string, len(e.Primaries))
	for i, p := range e.Primaries {
		parts[i] = string(p.Op) + p.Operand
	}
	return strings.Join(parts, " || ")
}

// IsBareVersion reports whether the expression is exactly one "==" primary,
// i.e. the caller wrote a plain version string with no relational operator.
func (e *Expression) IsBareVersion() (string, bool) {
	if e == nil || len(e.Primaries) != 1 || e.Primaries[0].Op != OpEQ {
		return "", false
	}
	return e.Primaries[0].Operand, true
}

// Best selects the highest version in candidates that satisfies e, per
// spec.md §4.4: highest version wins. Ties are resolved by the caller
// (stack order, then lexicographic stability) since Best has no visibility
// into which stack a candidate came from.
func (e *Expression) Best(candidates []string) (string, bool) {
	var best string
	found := false
	for _, c := range candidates {
		if !e.Matches(c) {
			continue
		}
		if !found || Less(best, c) {
			best = c
			found = true
		}
	}
	return best, found
}
