package env

import (
	"strings"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/table"
)

// Mutation is one applied change to a State, carrying enough of the prior
// value to invert itself. Grounded on python/eups/table.py's
// execute_envPrepend/execute_envSet/pathUnique, whose forward-only
// mutation is replaced here by a value that also knows how to undo
// itself (spec.md §4.5).
type Mutation struct {
	Kind    string // "envSet", "envUnset", "addAlias"
	Name    string
	Value   string
	Had     bool // Name had a prior value/alias before this mutation
	Prev    string
	PrevSet bool // Name was explicitly unset before this mutation
}

const defaultSep = ":"

// Apply runs one canonicalized table.Action against state in place,
// returning the Mutation that records what changed. Unknown action names
// (setupRequired, setupOptional, anything pkg/resolver should have
// already consumed) are rejected: this engine only understands pure
// environment/alias mutations.
func Apply(state *State, act table.Action) (*Mutation, error) {
	switch act.Name {
	case "envSet":
		return applySet(state, act)
	case "envUnset":
		return applyUnset(state, act)
	case "envPrepend":
		return applyPrependAppend(state, act, true, defaultSep)
	case "envAppend":
		return applyPrependAppend(state, act, false, defaultSep)
	case "envRemove":
		return applyRemove(state, act, defaultSep)
	case "pathPrepend":
		return applyPrependAppend(state, act, true, defaultSep)
	case "pathAppend":
		return applyPrependAppend(state, act, false, defaultSep)
	case "pathRemove":
		return applyRemove(state, act, defaultSep)
	case "addAlias":
		return applyAlias(state, act)
	default:
		return nil, errors.Newf(errors.CodeInternal, "pkg/env cannot apply action %q, it is not an environment mutation", act.Name)
	}
}

func requireArgs(act table.Action, n int) error {
	if len(act.Args) < n {
		return errors.Newf(errors.CodeTableParseError, "action %s requires at least %d argument(s), got %d", act.Name, n, len(act.Args))
	}
	return nil
}

func applySet(state *State, act table.Action) (*Mutation, error) {
	if err := requireArgs(act, 2); err != nil {
		return nil, err
	}
	name, value := act.Args[0], act.Args[1]
	m := &Mutation{Kind: "envSet", Name: name, Value: value}
	m.Prev, m.Had = state.Vars[name]
	m.PrevSet = state.Unset[name]

	state.Vars[name] = value
	delete(state.Unset, name)
	return m, nil
}

func applyUnset(state *State, act table.Action) (*Mutation, error) {
	if err := requireArgs(act, 1); err != nil {
		return nil, err
	}
	name := act.Args[0]
	m := &Mutation{Kind: "envUnset", Name: name}
	m.Prev, m.Had = state.Vars[name]
	m.PrevSet = state.Unset[name]

	delete(state.Vars, name)
	state.Unset[name] = true
	return m, nil
}

func sepArg(act table.Action, positionalIndex int, def string) string {
	if len(act.Args) > positionalIndex && act.Args[positionalIndex] != "" {
		return act.Args[positionalIndex]
	}
	return def
}

func applyPrependAppend(state *State, act table.Action, prepend bool, defSep string) (*Mutation, error) {
	if err := requireArgs(act, 2); err != nil {
		return nil, err
	}
	name, value := act.Args[0], act.Args[1]
	sep := sepArg(act, 2, defSep)

	m := &Mutation{Kind: "envSet", Name: name, Value: value}
	m.Prev, m.Had = state.Vars[name]
	m.PrevSet = state.Unset[name]

	existing := state.Vars[name]
	parts := splitNonEmpty(existing, sep)
	parts = removeAll(parts, value)

	var newParts []string
	if prepend {
		newParts = append([]string{value}, parts...)
	} else {
		newParts = append(parts, value)
	}
	newVal := strings.Join(newParts, sep)

	state.Vars[name] = newVal
	delete(state.Unset, name)
	m.Value = newVal
	return m, nil
}

func applyRemove(state *State, act table.Action, defSep string) (*Mutation, error) {
	if err := requireArgs(act, 2); err != nil {
		return nil, err
	}
	name, value := act.Args[0], act.Args[1]
	sep := sepArg(act, 2, defSep)

	m := &Mutation{Kind: "envSet", Name: name}
	m.Prev, m.Had = state.Vars[name]
	m.PrevSet = state.Unset[name]

	existing := state.Vars[name]
	parts := splitNonEmpty(existing, sep)
	parts = removeAll(parts, value)
	newVal := strings.Join(parts, sep)

	// envRemove leaves the variable set but empty rather than unsetting
	// it (spec.md §9 Open Question decision: distinguishing "was declared
	// empty" from "was never set" matters to downstream `if $?{VAR}`
	// guards).
	state.Vars[name] = newVal
	delete(state.Unset, name)
	m.Value = newVal
	return m, nil
}

func applyAlias(state *State, act table.Action) (*Mutation, error) {
	if err := requireArgs(act, 2); err != nil {
		return nil, err
	}
	name, cmd := act.Args[0], act.Args[1]
	m := &Mutation{Kind: "addAlias", Name: name, Value: cmd}
	m.Prev, m.Had = state.Aliases[name]

	state.Aliases[name] = cmd
	return m, nil
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}

func removeAll(items []string, target string) []string {
	out := items[:0:0]
	for _, it := range items {
		if it != target {
			out = append(out, it)
		}
	}
	return out
}

// Revert undoes m against state, restoring whatever value or unset-ness
// preceded it.
func Revert(state *State, m *Mutation) {
	switch m.Kind {
	case "addAlias":
		if m.Had {
			state.Aliases[m.Name] = m.Prev
		} else {
			delete(state.Aliases, m.Name)
		}
	default:
		if m.Had {
			state.Vars[m.Name] = m.Prev
			delete(state.Unset, m.Name)
		} else {
			delete(state.Vars, m.Name)
			if m.PrevSet {
				state.Unset[m.Name] = true
			} else {
				delete(state.Unset, m.Name)
			}
		}
	}
}
