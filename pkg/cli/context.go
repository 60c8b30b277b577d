// Package cli is the orchestration layer between cmd/eups's cobra verbs
// and the core packages: it turns flags into a resolver.Request, drives
// an env.Engine over the resulting Plan, updates pkg/session markers, and
// hands the result to a pkg/shell.Printer. Grounded on dodot's
// pkg/core/execute.go "flags in, ExecutionContext out" pipeline shape,
// narrowed from dodot's pack/handler pipeline to EUPS's setup/unsetup
// graph.
package cli

import (
	"os"

	"github.com/RobertLuptonTheGood/eups/pkg/config"
	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/env"
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/logging"
	"github.com/RobertLuptonTheGood/eups/pkg/paths"
	"github.com/RobertLuptonTheGood/eups/pkg/shell"
	"github.com/rs/zerolog"
)

// Context bundles the ambient configuration and the live process
// environment an invocation resolves against. One Context is built once
// per process and threaded through every verb.
type Context struct {
	Config  *config.Config
	Home    string
	Stacks  []*db.Stack
	Printer shell.Printer
	State   *env.State
	Logger  zerolog.Logger
}

// NewContext resolves Config, the user's home directory, the stack list,
// and the shell printer, and snapshots the current process environment
// into a State for verbs to mutate. environ is the shape os.Environ()
// returns; pass it explicitly so tests can supply a synthetic one.
func NewContext(environ []string) (*Context, error) {
	home, err := paths.UserHome()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	var stacks []*db.Stack
	for _, root := range cfg.StackRoots {
		stacks = append(stacks, db.NewStack(root))
	}

	printer, err := shell.ForName(cfg.Shell)
	if err != nil {
		return nil, err
	}

	return &Context{
		Config:  cfg,
		Home:    home,
		Stacks:  stacks,
		Printer: printer,
		State:   env.FromOS(environ),
		Logger:  logging.GetLogger("cli"),
	}, nil
}

// Flavor resolves the active flavor per spec.md §6: an explicit override
// wins, else EUPS_FLAVOR via Config, else the NULL default baked into
// pkg/config's embedded defaults.
func (c *Context) Flavor(override string) string {
	if override != "" {
		return override
	}
	return c.Config.Flavor
}

// narrowStacks applies -Z (single stack) / -z (substring filter) to the
// Context's stack list, per spec.md §6's common options.
func (c *Context) narrowStacks(onlyRoot, filterToken string) ([]*db.Stack, error) {
	if onlyRoot != "" {
		return []*db.Stack{db.NewStack(onlyRoot)}, nil
	}
	if filterToken == "" {
		return c.Stacks, nil
	}
	var out []*db.Stack
	for _, s := range c.Stacks {
		if containsToken(s.Root, filterToken) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, errors.Newf(errors.CodeUsage, "no stack in EUPS_PATH matches -z %q", filterToken)
	}
	return out, nil
}

func containsToken(s, token string) bool {
	for i := 0; i+len(token) <= len(s); i++ {
		if s[i:i+len(token)] == token {
			return true
		}
	}
	return false
}

// Environ renders the Context's current State back to "KEY=VALUE" pairs,
// the shape os.Environ() returns. Used by verbs that need to re-enter
// resolution (e.g. unsetup reading a sibling SETUP_* marker) against the
// live, not-yet-committed environment.
func (c *Context) Environ() []string {
	out := make([]string, 0, len(c.State.Vars))
	for k, v := range c.State.Vars {
		out = append(out, k+"="+v)
	}
	return out
}

// osEnviron is a seam for production callers; tests build a Context by
// hand instead of calling NewContext.
func osEnviron() []string { return os.Environ() }
