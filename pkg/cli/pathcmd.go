package cli

import "github.com/RobertLuptonTheGood/eups/pkg/errors"

// Path resolves product's PRODUCT_DIR without setting it up: a read-only
// convenience used pervasively by build scripts in original_source's
// trunk/ (spec.md's verb table names `path`; SPEC_FULL.md's supplement
// grounds it on Eups.py's findSetupVersion).
func Path(ctx *Context, product, versionExpr, flavor string) (string, error) {
	stacks, err := ctx.narrowStacks("", "")
	if err != nil {
		return "", err
	}
	flavor = ctx.Flavor(flavor)

	opts := SetupOptions{Product: product, VersionExpr: versionExpr, Flavor: flavor}
	plan, root, err := databasePlan(stacks, opts, flavor)
	if err != nil {
		return "", err
	}
	if root.Product == "" || len(plan.Products) == 0 {
		return "", errors.ProductNotFound(product, versionExpr, nil, "")
	}
	return root.ProdDir, nil
}
