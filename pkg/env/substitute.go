package env

import "strings"

// Substitute expands ${VAR} and $?{VAR} tokens in args against bag first,
// then state.Vars. ${VAR} expands to "" when VAR is undefined in either;
// $?{VAR} instead requests that the whole action be skipped when VAR is
// undefined (spec.md §4.2's value-substitution rule). skip reports that
// request back to the caller, which must then drop the action entirely
// rather than applying it with a partially-expanded argument.
func Substitute(args []string, state *State, bag map[string]string) (out []string, skip bool, err error) {
	out = make([]string, len(args))
	for i, arg := range args {
		expanded, argSkip := substituteOne(arg, state, bag)
		if argSkip {
			return nil, true, nil
		}
		out[i] = expanded
	}
	return out, false, nil
}

func lookup(name string, state *State, bag map[string]string) (string, bool) {
	if bag != nil {
		if v, ok := bag[name]; ok {
			return v, true
		}
	}
	if state != nil {
		if v, ok := state.Vars[name]; ok {
			return v, true
		}
	}
	return "", false
}

func substituteOne(s string, state *State, bag map[string]string) (string, bool) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], "$?{") {
			end := strings.IndexByte(s[i+3:], '}')
			if end < 0 {
				b.WriteString(s[i:])
				break
			}
			name := s[i+3 : i+3+end]
			val, ok := lookup(name, state, bag)
			if !ok {
				return "", true
			}
			b.WriteString(val)
			i += 3 + end + 1
			continue
		}
		if strings.HasPrefix(s[i:], "${") {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				b.WriteString(s[i:])
				break
			}
			name := s[i+2 : i+2+end]
			val, _ := lookup(name, state, bag)
			b.WriteString(val)
			i += 2 + end + 1
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String(), false
}
