package cli

import (
	"os"
	"path/filepath"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/env"
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/session"
	"github.com/RobertLuptonTheGood/eups/pkg/shell"
	"github.com/RobertLuptonTheGood/eups/pkg/table"
)

// UnsetupResult is the shell output plus the non-fatal consistency
// warning an unsetup may surface (spec.md §4.6).
type UnsetupResult struct {
	Changes []shell.Change
	Mismatch *errors.EupsError
}

// Unsetup tears down product's environment contribution, read back out of
// its own SETUP_<PRODUCT>/<PRODUCT>_DIR marker rather than the database,
// so that a reorganised or since-deleted database never blocks it
// (spec.md §4.4's "Unsetup resolution" paragraph, §8 scenario 5). It only
// unwinds the named product itself; dependencies it pulled in keep their
// own SETUP_* markers untouched, mirroring the original implementation's
// non-cascading default.
func Unsetup(ctx *Context, product string) (*UnsetupResult, error) {
	state, err := session.ReadState(ctx.State.Vars, product)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errors.Newf(errors.CodeUsage, "%s is not set up", product)
	}

	// A recorded <PRODUCT>_DIR that no longer exists on disk is reported
	// as a mismatch; the unsetup still proceeds.
	var mismatch *errors.EupsError
	currentDir := state.ProductDir
	if _, statErr := os.Stat(currentDir); statErr != nil {
		currentDir = ""
	}
	if cerr := state.CheckConsistency(currentDir); cerr != nil {
		mismatch = cerr
	}

	engine, err := env.NewEngine(ctx.State)
	if err != nil {
		return nil, err
	}
	changes, err := unwindMarker(ctx, engine, state.Marker)
	if err != nil {
		return nil, err
	}

	working := engine.Working()
	delete(working.Vars, state.Marker.VarName())
	delete(working.Vars, state.Marker.DirVarName())
	changes = append(changes,
		shell.Change{Kind: shell.Unset, Name: state.Marker.VarName()},
		shell.Change{Kind: shell.Unset, Name: state.Marker.DirVarName()},
	)

	ctx.State = engine.Commit()
	return &UnsetupResult{Changes: changes, Mismatch: mismatch}, nil
}

// unwindMarker re-reads marker's table file and applies each action's
// best-effort inverse against engine's working state, in reverse
// application order. Unlike the engine-buffered forward path Setup uses,
// this cannot know the exact value a variable held before the original
// setup (that bookkeeping only exists within the process that ran it);
// it instead applies the per-action-kind inverse rule of spec.md §4.5's
// Forward/Inverse table directly (unset for envSet, remove-one-occurrence
// for envPrepend/envAppend, append for envRemove), which is exact for the
// path-like actions and approximate-but-safe for plain envSet.
func unwindMarker(ctx *Context, engine *env.Engine, marker *session.Marker) ([]shell.Change, error) {
	tableFile, prodDir, upsDir, flavor, err := locateMarkerTable(ctx, marker)
	if err != nil {
		return nil, err
	}
	doc, err := readTable(tableFile)
	if err != nil {
		return nil, err
	}
	acts, err := table.Expand(doc, table.Env{Flavor: flavor})
	if err != nil {
		return nil, err
	}

	bag := map[string]string{
		"PRODUCT_NAME":    marker.Product,
		"PRODUCT_DIR":     prodDir,
		"PRODUCT_VERSION": marker.Version,
		"PRODUCT_FLAVOR":  flavor,
		"UPS_DIR":         upsDir,
	}

	working := engine.Working()
	var changes []shell.Change
	for i := len(acts) - 1; i >= 0; i-- {
		act := acts[i]
		if act.Name == "setupRequired" || act.Name == "setupOptional" {
			continue
		}
		if act.Name == "addAlias" {
			args, skip, err := env.Substitute(act.Args, working, bag)
			if err != nil {
				return nil, err
			}
			if skip || len(args) == 0 {
				continue
			}
			delete(working.Aliases, args[0])
			changes = append(changes, shell.Change{Kind: shell.Unalias, Name: args[0]})
			continue
		}

		inv, ok := inverseAction(act)
		if !ok {
			continue
		}
		args, skip, err := env.Substitute(inv.Args, working, bag)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		inv.Args = args
		m, err := env.Apply(working, inv)
		if err != nil {
			return nil, err
		}
		changes = append(changes, shell.ForwardChanges([]*env.Mutation{m})...)
	}
	return changes, nil
}

// inverseAction maps a table.Action to its best-effort inverse per
// spec.md §4.5's Forward/Inverse table. ok is false for actions with no
// safe context-free inverse (envUnset: the prior value is unknowable
// without the originating process's Mutation history) or that aren't
// environment mutations at all (setupRequired/setupOptional, rejected
// by the caller before this is reached).
func inverseAction(act table.Action) (table.Action, bool) {
	switch act.Name {
	case "envSet":
		if len(act.Args) < 1 {
			return table.Action{}, false
		}
		return table.Action{Name: "envUnset", Args: act.Args[:1]}, true
	case "envPrepend", "envAppend":
		return table.Action{Name: "envRemove", Args: act.Args}, true
	case "pathPrepend", "pathAppend":
		return table.Action{Name: "pathRemove", Args: act.Args}, true
	case "envRemove":
		return table.Action{Name: "envAppend", Args: act.Args}, true
	case "pathRemove":
		return table.Action{Name: "pathAppend", Args: act.Args}, true
	default:
		return table.Action{}, false
	}
}

// locateMarkerTable resolves the table file an unsetup should re-read:
// preferentially <PRODUCT>_DIR/ups/<product>.table (spec.md §4.6),
// falling back to the declaring stack's database record when that path
// is absent and the product isn't a local (`setup -r`) setup.
func locateMarkerTable(ctx *Context, marker *session.Marker) (tableFile, prodDir, upsDir, flavor string, err error) {
	flavor = marker.Flavor
	if dir, ok := marker.LocalDir(); ok {
		prodDir = dir
	} else {
		prodDir = ctx.State.Vars[marker.DirVarName()]
	}
	upsDir = filepath.Join(prodDir, "ups")
	tableFile = filepath.Join(upsDir, marker.Product+".table")

	if _, statErr := os.Stat(tableFile); statErr == nil {
		return tableFile, prodDir, upsDir, flavor, nil
	}
	if marker.IsLocal() || marker.StackRoot == "" {
		return "", prodDir, upsDir, flavor, nil
	}

	stack := db.NewStack(marker.StackRoot)
	rec, derr := db.New(stack).FindVersionRecord(marker.Product, marker.Version)
	if derr != nil || rec == nil {
		return "", prodDir, upsDir, flavor, nil
	}
	if info, ok := rec.Flavors[marker.Flavor]; ok {
		return info.TableFile, info.ProductDir, info.UpsDir, flavor, nil
	}
	return "", prodDir, upsDir, flavor, nil
}
