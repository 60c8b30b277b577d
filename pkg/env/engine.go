package env

import (
	"github.com/RobertLuptonTheGood/eups/pkg/table"
)

// Engine buffers the ordered actions produced across an entire setup
// graph and applies them against a cloned State, so that a failure
// partway through a multi-product setup never leaves the real State
// partially mutated (spec.md §5). Grounded on that buffering requirement;
// the resolver is responsible for handing Engine only pure env/alias
// actions, having already consumed setupRequired/setupOptional itself.
type Engine struct {
	base      *State
	working   *State
	mutations []*Mutation
	bag       map[string]string
}

// SetSubstitutionBag installs the per-product variable bag (PRODUCT_DIR,
// UPS_DIR, and friends) that Buffer substitutes into an action's
// arguments ahead of the caller's own process environment. Call it again
// before buffering the next product's actions.
func (e *Engine) SetSubstitutionBag(bag map[string]string) {
	e.bag = bag
}

// NewEngine starts a buffered session cloned from base.
func NewEngine(base *State) (*Engine, error) {
	working, err := base.Clone()
	if err != nil {
		return nil, err
	}
	return &Engine{base: base, working: working}, nil
}

// Buffer substitutes act's arguments against the current substitution bag
// and working state, then applies the result and records the resulting
// Mutation. A $?{VAR} reference to an undefined variable skips the
// action entirely rather than erroring (spec.md §4.2). It does not touch
// base until Commit is called.
func (e *Engine) Buffer(act table.Action) error {
	args, skip, err := Substitute(act.Args, e.working, e.bag)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}
	act.Args = args

	m, err := Apply(e.working, act)
	if err != nil {
		return err
	}
	e.mutations = append(e.mutations, m)
	return nil
}

// Mutations returns every Mutation buffered so far, in application order.
func (e *Engine) Mutations() []*Mutation {
	return e.mutations
}

// Working returns the engine's in-progress State (not yet committed).
func (e *Engine) Working() *State {
	return e.working
}

// Commit returns the working State as the new base for a caller to adopt.
// Call it only once every action for the whole setup graph has buffered
// successfully.
func (e *Engine) Commit() *State {
	return e.working
}

// Revert discards all buffered mutations and restores the engine's
// working state to base, by replaying every Mutation's inverse in
// reverse order rather than simply re-cloning base: this preserves the
// commutativity property spec.md §4.5 requires of Revert when it is
// called mid-sequence rather than only at the very end.
func (e *Engine) Revert() {
	for i := len(e.mutations) - 1; i >= 0; i-- {
		Revert(e.working, e.mutations[i])
	}
	e.mutations = nil
}
