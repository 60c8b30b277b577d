// Package shell translates a pkg/env mutation list into the shell-evalable
// command stream the calling wrapper function `eval`s (spec.md §6's
// "Stdout" contract for env-mutating verbs), keeping shell syntax out of
// every other package (spec.md §4.5's "Serialization" design, and the
// REDESIGN FLAG against threading per-shell output through the whole
// codebase).
package shell

import "github.com/RobertLuptonTheGood/eups/pkg/env"

// Change is one shell-neutral variable/alias change: set a variable or
// alias to a value, or remove it entirely. It is the only vocabulary a
// Printer understands; nothing downstream of pkg/env ever sees a
// Mutation directly.
type Change struct {
	Kind  ChangeKind
	Name  string
	Value string
}

type ChangeKind int

const (
	Set ChangeKind = iota
	Unset
	Alias
	Unalias
)

// ForwardChanges renders muts, in order, as the Changes a `setup` should
// emit: each Mutation's own Kind/Name/Value, forward.
func ForwardChanges(muts []*env.Mutation) []Change {
	changes := make([]Change, 0, len(muts))
	for _, m := range muts {
		changes = append(changes, forwardChange(m))
	}
	return changes
}

func forwardChange(m *env.Mutation) Change {
	switch m.Kind {
	case "addAlias":
		return Change{Kind: Alias, Name: m.Name, Value: m.Value}
	case "envUnset":
		return Change{Kind: Unset, Name: m.Name}
	default:
		return Change{Kind: Set, Name: m.Name, Value: m.Value}
	}
}

// InverseChanges renders muts as the Changes an `unsetup` should emit to
// undo them: each Mutation's recorded prior state, walked in reverse
// application order so later overwrites of the same name unwind before
// earlier ones (spec.md §4.5's per-action Inverse column, applied to a
// whole buffered sequence).
func InverseChanges(muts []*env.Mutation) []Change {
	changes := make([]Change, 0, len(muts))
	for i := len(muts) - 1; i >= 0; i-- {
		changes = append(changes, inverseChange(muts[i]))
	}
	return changes
}

func inverseChange(m *env.Mutation) Change {
	isAlias := m.Kind == "addAlias"
	if !m.Had {
		if isAlias {
			return Change{Kind: Unalias, Name: m.Name}
		}
		return Change{Kind: Unset, Name: m.Name}
	}
	if isAlias {
		return Change{Kind: Alias, Name: m.Name, Value: m.Prev}
	}
	return Change{Kind: Set, Name: m.Name, Value: m.Prev}
}
