// Package env implements the pure, value-returning environment-mutation
// engine (spec.md §4.5/§5): applying a product's table-file actions never
// touches the running process's environment directly, it only produces a
// new State plus the ordered list of Mutations needed to reach it. The
// caller (pkg/shell) is responsible for turning that into shell script
// text. pkg/cli resolves the whole setup graph first and only then
// buffers its actions through an Engine before committing anything.
package env

import (
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/mitchellh/copystructure"
)

// State is the full mutable environment EUPS tracks: variables, shell
// aliases, and the set of variables an envUnset explicitly removed (kept
// distinct from a variable that simply was never set).
type State struct {
	Vars    map[string]string
	Aliases map[string]string
	Unset   map[string]bool
}

// New returns an empty State.
func New() *State {
	return &State{
		Vars:    map[string]string{},
		Aliases: map[string]string{},
		Unset:   map[string]bool{},
	}
}

// FromOS seeds a State from a process environment, given as "KEY=VALUE"
// pairs (the shape os.Environ() returns).
func FromOS(environ []string) *State {
	s := New()
	for _, kv := range environ {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				s.Vars[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return s
}

// Clone deep-copies s via copystructure, so mutating the clone can never
// alias the caller's maps. Grounded on the "pure value-returning engine"
// redesign, which requires every intermediate resolver frame to hold its
// own independent State.
func (s *State) Clone() (*State, error) {
	copied, err := copystructure.Copy(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "cloning environment state")
	}
	clone, ok := copied.(*State)
	if !ok {
		return nil, errors.New(errors.CodeInternal, "environment state clone had unexpected type")
	}
	return clone, nil
}
