package table

import "strings"

// canonicalActionNames maps legacy and lower-cased action spellings to the
// canonical names used by the rest of the system (spec.md §4.2). Table
// files in the wild accumulate a handful of spellings for the same action
// across decades; the parser normalizes them here rather than pushing the
// variants downstream into pkg/env.
var canonicalActionNames = map[string]string{
	"setenv":        "envSet",
	"envset":        "envSet",
	"unsetenv":      "envUnset",
	"envunset":      "envUnset",
	"envappend":     "envAppend",
	"envprepend":    "envPrepend",
	"envremove":     "envRemove",
	"pathset":       "envSet",
	"pathprepend":   "pathPrepend",
	"pathappend":    "pathAppend",
	"pathremove":    "pathRemove",
	"alias":         "addAlias",
	"addalias":      "addAlias",
	"setuprequired": "setupRequired",
	"setuprequire":  "setupRequired",
	"setupoptional": "setupOptional",
}

// CanonicalActionName normalizes raw, the action name as written in a
// table file, to its canonical spelling. wasAlias reports whether raw was a
// recognized legacy alias rather than already-canonical text.
func CanonicalActionName(raw string) (canonical string, wasAlias bool) {
	if canon, ok := canonicalActionNames[strings.ToLower(raw)]; ok {
		return canon, canon != raw
	}
	return raw, false
}
