package cli

import (
	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/resolver"
)

// substitutionBag builds the per-product variable bag a table file's
// ${VAR}/$?{VAR} references resolve against, ahead of the process
// environment (spec.md §4.2's Inputs list). Legacy table files also
// reference the same values under a UPS_PROD_* prefix; both spellings
// are populated so either can be expanded.
func substitutionBag(rp resolver.ResolvedProduct, stack *db.Stack) map[string]string {
	var stackRoot, dbPath string
	if stack != nil {
		stackRoot = stack.Root
		dbPath = stack.DBPath()
	}
	bag := map[string]string{
		"PRODUCT_NAME":    rp.Product,
		"PRODUCT_DIR":     rp.ProdDir,
		"PRODUCT_VERSION": rp.Version,
		"PRODUCT_FLAVOR":  rp.Flavor,
		"PRODUCTS":        stackRoot,
		"UPS_DIR":         rp.UpsDir,
		"UPS_DB":          dbPath,
	}
	bag["UPS_PROD_NAME"] = bag["PRODUCT_NAME"]
	bag["UPS_PROD_DIR"] = bag["PRODUCT_DIR"]
	bag["UPS_PROD_VERSION"] = bag["PRODUCT_VERSION"]
	bag["UPS_PROD_FLAVOR"] = bag["PRODUCT_FLAVOR"]
	return bag
}

// stackByIndex returns the stack a ResolvedProduct was selected from.
func stackByIndex(stacks []*db.Stack, index int) *db.Stack {
	if index < 0 || index >= len(stacks) {
		return nil
	}
	return stacks[index]
}
