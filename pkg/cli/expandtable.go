package cli

import (
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/resolver"
	"github.com/RobertLuptonTheGood/eups/pkg/table"
)

// ExpandTable reads and evaluates product's table file the way `setup`
// would, without applying the resulting actions: grounded on
// original_source/'s table.py Table expand-and-print path used by
// eupsPkg tooling (named in spec.md §6's verb list, detailed here per
// SPEC_FULL.md's "dropped verb" supplement).
func ExpandTable(ctx *Context, product, versionExpr, flavor string) ([]table.Action, error) {
	stacks, err := ctx.narrowStacks("", "")
	if err != nil {
		return nil, err
	}
	flavor = ctx.Flavor(flavor)

	opts := SetupOptions{Product: product, VersionExpr: versionExpr, Flavor: flavor}
	plan, _, err := databasePlan(stacks, opts, flavor)
	if err != nil {
		return nil, err
	}
	if len(plan.Products) == 0 {
		return nil, errors.ProductNotFound(product, versionExpr, nil, "")
	}

	root := rootOf(plan, product)
	var acts []resolver.TaggedAction
	for _, act := range plan.Actions {
		if act.Product == root.Product && act.Version == root.Version {
			acts = append(acts, act)
		}
	}
	out := make([]table.Action, len(acts))
	for i, act := range acts {
		out[i] = act.Action
	}
	return out, nil
}
