package table

// Action is one resolved, canonicalized action from a table file, ready
// for pkg/env to execute. OriginalName preserves the as-written spelling
// for -v diagnostics even when Name has been normalized from a legacy
// alias (spec.md §4.2).
type Action struct {
	Name         string
	OriginalName string
	Args         []string
	Line         int
}

// Expand walks doc's blocks that apply to env.Flavor, evaluates every `if`
// conditional against env, and returns the resulting ordered ActionList.
// Order is preserved exactly as written: block order, then statement order
// within each block, with conditionally-false bodies omitted entirely.
func Expand(doc *Document, env Env) ([]Action, error) {
	var out []Action
	for _, b := range doc.Blocks {
		if !b.Matches(env.Flavor) {
			continue
		}
		acts, err := expandPayload(b.Payload, env)
		if err != nil {
			return nil, err
		}
		out = append(out, acts...)
	}
	return out, nil
}

func expandPayload(p Payload, env Env) ([]Action, error) {
	var out []Action
	for _, stmt := range p {
		switch s := stmt.(type) {
		case *ActionStmt:
			canon, _ := CanonicalActionName(s.Name)
			out = append(out, Action{Name: canon, OriginalName: s.Name, Args: s.Args, Line: s.Line})
		case *IfStmt:
			ok, err := Evaluate(s.Cond, env)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			inner, err := expandPayload(s.Body, env)
			if err != nil {
				return nil, err
			}
			out = append(out, inner...)
		}
	}
	return out, nil
}
