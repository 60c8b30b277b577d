package db

import "github.com/RobertLuptonTheGood/eups/pkg/errors"

// Scope distinguishes a tag declared in a shared, global stack from one a
// user declares privately (spec.md §3 addition, grounded on
// python/eups/tags.py's Tags.Group "global"/"user" split).
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeUser
)

func (s Scope) String() string {
	if s == ScopeUser {
		return "user"
	}
	return "global"
}

// Registry tracks which scope owns each tag name registered with it, so a
// user tag can never shadow a global tag (or vice versa) under the same
// name. Database itself stays scope-agnostic and does not consult a
// Registry; the resolver does not use one either.
type Registry struct {
	owners map[string]Scope
}

// NewRegistry creates an empty tag registry.
func NewRegistry() *Registry {
	return &Registry{owners: map[string]Scope{}}
}

// Register records that name belongs to scope. It returns a
// TagNameConflict error if name is already owned by a different scope.
func (r *Registry) Register(name string, scope Scope, stackRoot string) error {
	if owner, ok := r.owners[name]; ok && owner != scope {
		return errors.Newf(errors.CodeTagNameConflict,
			"tag %q is already a %s tag, cannot also declare it as a %s tag in %s",
			name, owner, scope, stackRoot).
			WithDetail("name", name).
			WithDetail("existingScope", owner.String()).
			WithDetail("requestedScope", scope.String()).
			WithDetail("stack", stackRoot)
	}
	r.owners[name] = scope
	return nil
}

// Scope reports the scope name was registered under, if any.
func (r *Registry) Scope(name string) (Scope, bool) {
	s, ok := r.owners[name]
	return s, ok
}
