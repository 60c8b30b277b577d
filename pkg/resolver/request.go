// Package resolver implements dependency resolution over a stack of
// product databases: selecting a root product's version, walking its
// table file's setupRequired/setupOptional edges, detecting cycles, and
// emitting one ordered, per-product-tagged ActionList (spec.md §4.4).
package resolver

import "github.com/RobertLuptonTheGood/eups/pkg/version"

// Request describes one product a caller wants resolved, either as the
// root of a setup or as a child edge discovered while walking a table
// file's setupRequired/setupOptional actions.
type Request struct {
	Product     string
	VersionExpr *version.Expression // nil means resolve Tag instead
	Tag         string              // used when VersionExpr is nil; defaults to "current"
	Required    bool                // false for setupOptional edges; always true for the root

	// Flavor is also filled from a child edge's -f argument; the other
	// fields are root-only and zero-valued on recursive child requests.
	Flavor           string
	BuildType        string
	OnlyDependencies bool
	IgnoreCurrent    bool
}

func (r Request) tagOrDefault() string {
	if r.Tag != "" {
		return r.Tag
	}
	return "current"
}

// exprText renders the request's selection criterion for diagnostics and
// for the consistency-check comparison in spec.md §4.4 step 3.
func (r Request) exprText() string {
	if r.VersionExpr != nil {
		return r.VersionExpr.String()
	}
	return "tag:" + r.tagOrDefault()
}
