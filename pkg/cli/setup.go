package cli

import (
	"path/filepath"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/env"
	"github.com/RobertLuptonTheGood/eups/pkg/resolver"
	"github.com/RobertLuptonTheGood/eups/pkg/session"
	"github.com/RobertLuptonTheGood/eups/pkg/shell"
	"github.com/RobertLuptonTheGood/eups/pkg/table"
	"github.com/RobertLuptonTheGood/eups/pkg/version"
)

// SetupOptions mirrors spec.md §6's common options as they apply to the
// `setup` verb.
type SetupOptions struct {
	Product       string
	VersionExpr   string // raw expression text; empty means resolve Tag
	Tag           string
	Flavor        string
	StackRoot     string // -Z
	StackFilter   string // -z
	LocalRoot     string // -r
	TableFile     string // -m
	Just          bool // -j
	OnlyDeps      bool // -D
	Force         bool // -F
	IgnoreCurrent bool // -i
	Verbose       int
}

// SetupResult is everything a caller needs to report a setup and print
// its shell output.
type SetupResult struct {
	Plan     *resolver.Plan
	Changes  []shell.Change
	Markers  []*session.Marker
	Warnings []resolver.Warning
}

// Setup resolves opts.Product against ctx's stacks, buffers every
// resulting action through an env.Engine, and returns the shell-neutral
// Changes plus the SETUP_* markers the caller must also emit. When the
// product is already set up at a different version, its prior
// contribution is unwound first (spec.md §8 scenario 3).
func Setup(ctx *Context, opts SetupOptions) (*SetupResult, error) {
	flavor := ctx.Flavor(opts.Flavor)
	stacks, err := ctx.narrowStacks(opts.StackRoot, opts.StackFilter)
	if err != nil {
		return nil, err
	}

	var plan *resolver.Plan
	var root resolver.ResolvedProduct
	if opts.LocalRoot != "" {
		plan, root, err = localPlan(stacks, opts, flavor)
	} else {
		plan, root, err = databasePlan(stacks, opts, flavor)
	}
	if err != nil {
		return nil, err
	}

	engine, err := env.NewEngine(ctx.State)
	if err != nil {
		return nil, err
	}

	var priorChanges []shell.Change
	if prior, ok := existingMarker(ctx, opts.Product); ok && prior.Version != root.Version {
		priorChanges, err = unwindMarker(ctx, engine, prior)
		if err != nil {
			return nil, err
		}
	}

	productsByName := map[string]resolver.ResolvedProduct{}
	for _, rp := range plan.Products {
		productsByName[rp.Product] = rp
	}

	var markers []*session.Marker
	seen := map[string]bool{}
	for _, act := range plan.Actions {
		if opts.Just && act.Product != root.Product {
			continue
		}
		if opts.OnlyDeps && act.Product == root.Product {
			continue
		}
		rp := productsByName[act.Product]
		engine.SetSubstitutionBag(substitutionBag(rp, stackByIndex(stacks, rp.StackIndex)))
		if err := engine.Buffer(act.Action); err != nil {
			return nil, err
		}
		if !seen[act.Product] {
			seen[act.Product] = true
			markers = append(markers, markerFor(rp, stackRootFor(stacks, rp), opts.Tag))
		}
	}

	changes := append(priorChanges, shell.ForwardChanges(engine.Mutations())...)
	ctx.State = engine.Commit()

	return &SetupResult{Plan: plan, Changes: changes, Markers: markers, Warnings: plan.Warnings}, nil
}

func stackRootFor(stacks []*db.Stack, rp resolver.ResolvedProduct) string {
	if s := stackByIndex(stacks, rp.StackIndex); s != nil {
		return s.Root
	}
	return ""
}

func markerFor(rp resolver.ResolvedProduct, stackRoot, tag string) *session.Marker {
	return &session.Marker{
		Product:   rp.Product,
		Version:   rp.Version,
		Flavor:    rp.Flavor,
		StackRoot: stackRoot,
		Tag:       tag,
	}
}

// databasePlan resolves opts.Product from the stack database via
// pkg/resolver.
func databasePlan(stacks []*db.Stack, opts SetupOptions, flavor string) (*resolver.Plan, resolver.ResolvedProduct, error) {
	var expr *version.Expression
	if opts.VersionExpr != "" {
		e, err := version.ParseExpression(opts.VersionExpr)
		if err != nil {
			return nil, resolver.ResolvedProduct{}, err
		}
		expr = e
	}

	req := resolver.Request{
		Product:          opts.Product,
		VersionExpr:      expr,
		Tag:              opts.Tag,
		Flavor:           flavor,
		OnlyDependencies: opts.OnlyDeps,
		IgnoreCurrent:    opts.IgnoreCurrent,
	}

	r := resolver.New(stacks, flavor, "", opts.Verbose)
	plan, err := r.Resolve(req)
	if err != nil {
		return nil, resolver.ResolvedProduct{}, err
	}
	return plan, rootOf(plan, opts.Product), nil
}

// localPlan builds a Plan for `setup -r <dir>`: the root product is read
// directly from dir/ups/<product>.table rather than a stack database
// entry, recorded with the LOCAL: version prefix (spec.md §4.6); its
// setupRequired/setupOptional children still resolve normally against
// the stack database.
func localPlan(stacks []*db.Stack, opts SetupOptions, flavor string) (*resolver.Plan, resolver.ResolvedProduct, error) {
	upsDir := filepath.Join(opts.LocalRoot, "ups")
	tableFile := opts.TableFile
	if tableFile == "" {
		tableFile = filepath.Join(upsDir, opts.Product+".table")
	}

	root := resolver.ResolvedProduct{
		Product:    opts.Product,
		Version:    session.LocalPrefix + opts.LocalRoot,
		Flavor:     flavor,
		StackIndex: -1,
		ProdDir:    opts.LocalRoot,
		UpsDir:     upsDir,
		TableFile:  tableFile,
	}

	doc, err := readTable(tableFile)
	if err != nil {
		return nil, resolver.ResolvedProduct{}, err
	}
	acts, err := table.Expand(doc, table.Env{Flavor: flavor})
	if err != nil {
		return nil, resolver.ResolvedProduct{}, err
	}

	products := []resolver.ResolvedProduct{root}
	var actions []resolver.TaggedAction
	var warnings []resolver.Warning
	r := resolver.New(stacks, flavor, "", opts.Verbose)

	for _, act := range acts {
		if act.Name == "setupRequired" || act.Name == "setupOptional" {
			childReq, err := resolver.ChildRequest(act)
			if err != nil {
				return nil, resolver.ResolvedProduct{}, err
			}
			childPlan, err := r.Resolve(childReq)
			if err != nil {
				return nil, resolver.ResolvedProduct{}, err
			}
			products = append(products, childPlan.Products...)
			actions = append(actions, childPlan.Actions...)
			warnings = append(warnings, childPlan.Warnings...)
			continue
		}
		actions = append(actions, resolver.TaggedAction{Action: act, Product: root.Product, Version: root.Version})
	}

	return &resolver.Plan{Products: products, Actions: actions, Warnings: warnings}, root, nil
}

func rootOf(plan *resolver.Plan, product string) resolver.ResolvedProduct {
	for _, rp := range plan.Products {
		if rp.Product == product {
			return rp
		}
	}
	if len(plan.Products) > 0 {
		return plan.Products[0]
	}
	return resolver.ResolvedProduct{Product: product}
}

func existingMarker(ctx *Context, product string) (*session.Marker, bool) {
	st, err := session.ReadState(ctx.State.Vars, product)
	if err != nil || st == nil {
		return nil, false
	}
	return st.Marker, true
}

// MarkerChanges renders r's Markers as the SETUP_<PRODUCT>/<PRODUCT>_DIR
// shell.Changes a caller must emit alongside r.Changes, looking each
// marker's product directory up in r.Plan so cmd/eups never has to know
// resolver.ResolvedProduct's shape.
func (r *SetupResult) MarkerChanges() []shell.Change {
	dirs := map[string]string{}
	for _, rp := range r.Plan.Products {
		dirs[rp.Product] = rp.ProdDir
	}
	changes := make([]shell.Change, 0, len(r.Markers)*2)
	for _, m := range r.Markers {
		changes = append(changes,
			shell.Change{Kind: shell.Set, Name: m.VarName(), Value: m.Format()},
			shell.Change{Kind: shell.Set, Name: m.DirVarName(), Value: dirs[m.Product]},
		)
	}
	return changes
}
