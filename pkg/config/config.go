// Package config loads the ambient settings every verb needs before it
// can even build a resolver.Request: which stacks to search, which
// flavor and shell to assume, and the verbosity floor (spec.md §6,
// "Environment the core reads"). Grounded on dodot's koanf-based loader
// (pkg/config/koanf.go, config_loader.go), narrowed from dodot's
// pack/matcher configuration tree to EUPS's four ambient settings.
package config

// Config is the resolved ambient configuration for one invocation:
// embedded defaults, an optional eups.toml, and EUPS_* environment
// variables, merged in that increasing-priority order.
type Config struct {
	// StackRoots is the ordered list of stack roots to search, from
	// EUPS_PATH (colon-separated) or, failing that, EUPS_DIR as a
	// single-element fallback. It has no eups.toml equivalent: spec.md
	// §6 defines it purely as an environment input.
	StackRoots []string `koanf:"-"`

	Flavor string `koanf:"flavor"`
	Shell  string `koanf:"shell"`
	Debug  int    `koanf:"debug"`
}
