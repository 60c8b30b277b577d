// Package session implements the SETUP_<PRODUCT> / <PRODUCT>_DIR wire
// format a running shell session uses to record which products are
// currently set up (spec.md §4.6), and the STATE_MISMATCH integrity check
// unsetup runs against it.
package session

import (
	"fmt"
	"strings"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
)

// Marker is the parsed content of one SETUP_<PRODUCT> environment
// variable: enough to re-derive the table file an unsetup must walk in
// reverse, without consulting the database again.
type Marker struct {
	Product   string
	Version   string
	Flavor    string
	StackRoot string
	Tag       string // empty when the setup did not specify -t
}

// LocalPrefix marks a Version string recorded by `setup -r <dir>`: no
// database entry exists for it, per spec.md §4.6's local-setup rule.
const LocalPrefix = "LOCAL:"

// IsLocal reports whether m was set up from a local root rather than a
// declared database version.
func (m Marker) IsLocal() bool { return strings.HasPrefix(m.Version, LocalPrefix) }

// LocalDir returns the directory encoded in a local Version string.
func (m Marker) LocalDir() (string, bool) {
	if !m.IsLocal() {
		return "", false
	}
	return strings.TrimPrefix(m.Version, LocalPrefix), true
}

// VarName returns the SETUP_<PRODUCT> environment variable name for m's
// product.
func (m Marker) VarName() string {
	return "SETUP_" + strings.ToUpper(m.Product)
}

// DirVarName returns the <PRODUCT>_DIR mirror variable name for m's
// product.
func (m Marker) DirVarName() string {
	return strings.ToUpper(m.Product) + "_DIR"
}

// Format renders m to the value stored in SETUP_<PRODUCT>:
// `<product> <version> -f <flavor> -Z <stack-root> [-t <tag>]`. Fields
// containing whitespace are single-quoted, mirroring the original
// implementation's shell-quoting of the stack root when assembling this
// string.
func (m Marker) Format() string {
	fields := []string{quoteField(m.Product), quoteField(m.Version), "-f", quoteField(m.Flavor), "-Z", quoteField(m.StackRoot)}
	if m.Tag != "" {
		fields = append(fields, "-t", quoteField(m.Tag))
	}
	return strings.Join(fields, " ")
}

func quoteField(s string) string {
	if s == "" || strings.ContainsAny(s, " \t'\"") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

// ParseMarker parses value, the content of a SETUP_<PRODUCT> variable,
// back into a Marker. The product name is read from the value itself
// (its first field), not from the variable's uppercase name.
func ParseMarker(value string) (*Marker, error) {
	fields, err := splitShellFields(value)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeUsage, "parsing SETUP_* marker %q", value)
	}
	if len(fields) < 2 {
		return nil, errors.Newf(errors.CodeUsage, "malformed SETUP_* marker %q: expected at least product and version", value)
	}

	m := &Marker{Product: fields[0], Version: fields[1]}
	i := 2
	for i < len(fields) {
		switch fields[i] {
		case "-f":
			if i+1 >= len(fields) {
				return nil, errors.Newf(errors.CodeUsage, "malformed SETUP_* marker %q: -f missing a value", value)
			}
			m.Flavor = fields[i+1]
			i += 2
		case "-Z":
			if i+1 >= len(fields) {
				return nil, errors.Newf(errors.CodeUsage, "malformed SETUP_* marker %q: -Z missing a value", value)
			}
			m.StackRoot = fields[i+1]
			i += 2
		case "-t":
			if i+1 >= len(fields) {
				return nil, errors.Newf(errors.CodeUsage, "malformed SETUP_* marker %q: -t missing a value", value)
			}
			m.Tag = fields[i+1]
			i += 2
		default:
			return nil, errors.Newf(errors.CodeUsage, "malformed SETUP_* marker %q: unexpected token %q", value, fields[i])
		}
	}
	return m, nil
}

// splitShellFields tokenizes value the way a POSIX shell would split a
// single-quoted/double-quoted/unquoted word list, just enough to round-trip
// Marker.Format's output.
func splitShellFields(value string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	inField := false
	i := 0
	for i < len(value) {
		c := value[i]
		switch {
		case c == ' ' || c == '\t':
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}
			i++
		case c == '\'':
			inField = true
			i++
			for {
				if i >= len(value) {
					return nil, fmt.Errorf("unterminated single quote at position %d", i)
				}
				if value[i] == '\'' {
					i++
					break
				}
				cur.WriteByte(value[i])
				i++
			}
		case c == '"':
			inField = true
			i++
			for {
				if i >= len(value) {
					return nil, fmt.Errorf("unterminated double quote at position %d", i)
				}
				if value[i] == '"' {
					i++
					break
				}
				if value[i] == '\\' && i+1 < len(value) {
					cur.WriteByte(value[i+1])
					i += 2
					continue
				}
				cur.WriteByte(value[i])
				i++
			}
		default:
			inField = true
			cur.WriteByte(c)
			i++
		}
	}
	if inField {
		fields = append(fields, cur.String())
	}
	return fields, nil
}
