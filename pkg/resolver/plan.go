package resolver

import "github.com/RobertLuptonTheGood/eups/pkg/table"

// ResolvedProduct is one node the resolver selected: a (product, version)
// pair, the stack it was found in, and the directories its table file's
// actions will be substituted against.
type ResolvedProduct struct {
	Product    string
	Version    string
	Flavor     string
	StackIndex int
	ProdDir    string
	UpsDir     string
	TableFile  string
}

// TaggedAction is one environment-mutating action together with the
// (product, version) that owns it, per spec.md §4.4 step 5's audit
// requirement.
type TaggedAction struct {
	table.Action
	Product string
	Version string
}

// Warning is a non-fatal diagnostic the resolver attaches to a Plan:
// a duplicate declaration across stacks, or a reused dependency whose
// constraint text differs from the one that first selected it.
type Warning struct {
	Code    string
	Message string
	Product string
}

// Plan is the resolver's full output for one root request: every
// product it selected, dependencies before the products that require
// them, and the final ordered,
// tagged ActionList ready for pkg/env to apply.
type Plan struct {
	Products         []ResolvedProduct
	Actions          []TaggedAction
	Warnings         []Warning
	OptionalFailures []string
}
