package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/logging"
	"github.com/RobertLuptonTheGood/eups/pkg/table"
	"github.com/RobertLuptonTheGood/eups/pkg/version"
	"github.com/rs/zerolog"
)

// source is one stack in resolution order together with the Database
// that reads it.
type source struct {
	index int
	stack *db.Stack
	db    *db.Database
}

// selection records how a product already on the graph was chosen, so a
// later setupRequired/setupOptional referencing it can be consistency-
// checked per spec.md §4.4 step 3.
type selection struct {
	resolved ResolvedProduct
	exprText string
}

// frameEntry is one node on the resolver's active recursion path, used
// for cycle detection (spec.md §4.4 step 4).
type frameEntry struct {
	product  string
	required bool // whether the edge that pushed this frame was setupRequired
}

// Resolver walks a request against an ordered list of stacks, producing
// a Plan. Grounded on python/eups/Eups.py's setupProduct/_setupProduct
// recursion, rendered as an explicit frame stack instead of re-entrant
// interpreter calls per the "no re-entrancy" REDESIGN FLAG.
type Resolver struct {
	sources []source
	flavor  string
	build   string
	verbose int
	logger  zerolog.Logger

	selected map[string]*selection
	order    []ResolvedProduct
	actions  []TaggedAction
	warnings []Warning
	optFails []string
	required *graph
}

// New creates a Resolver over stacks, in search order, evaluating table
// files for flavor/build.
func New(stacks []*db.Stack, flavor, build string, verbose int) *Resolver {
	sources := make([]source, len(stacks))
	for i, s := range stacks {
		sources[i] = source{index: i, stack: s, db: db.New(s)}
	}
	return &Resolver{
		sources:  sources,
		flavor:   flavor,
		build:    build,
		verbose:  verbose,
		logger:   logging.GetLogger("resolver"),
		selected: map[string]*selection{},
		required: &graph{},
	}
}

// Resolve runs the algorithm for root and returns the completed Plan.
func (r *Resolver) Resolve(root Request) (*Plan, error) {
	root.Required = true
	if err := r.resolveOne(root, nil); err != nil {
		return nil, err
	}
	if err := checkAcyclic(r.required); err != nil {
		return nil, err
	}
	return &Plan{
		Products:         r.order,
		Actions:          r.actions,
		Warnings:         r.warnings,
		OptionalFailures: r.optFails,
	}, nil
}

// resolveOne resolves req, recursing into its setupRequired/setupOptional
// children, and appends its contribution to r.actions/r.order in place.
func (r *Resolver) resolveOne(req Request, frame []frameEntry) error {
	if sel, ok := r.selected[req.Product]; ok {
		if idx := frameIndex(frame, req.Product); idx >= 0 {
			if cycleIsAllRequired(frame[idx:], req.Required) {
				chain := make([]string, 0, len(frame)-idx+1)
				for _, f := range frame[idx:] {
					chain = append(chain, f.product)
				}
				chain = append(chain, req.Product)
				return errors.Cycle(chain)
			}
			return nil // benign re-entrance through an optional edge: already satisfied
		}
		return r.checkConsistency(req, sel)
	}

	resolved, err := r.selectVersion(req)
	if err != nil {
		if !req.Required {
			r.optFails = append(r.optFails, req.Product)
			return nil
		}
		return err
	}

	return r.proceedWithResolved(req, resolved, frame)
}

// proceedWithResolved records resolved as req.Product's selection,
// reads and expands its table file, recurses into its dependencies, and
// only then appends req.Product's own contribution to r.order/r.actions
// so that a product's dependencies always precede it in the plan.
// Split out of resolveOne so resolveMerged can share it after picking a
// version from several sibling constraints at once.
func (r *Resolver) proceedWithResolved(req Request, resolved ResolvedProduct, frame []frameEntry) error {
	r.checkDuplicateDeclaration(req.Product, resolved)
	r.logger.Debug().Str("product", req.Product).Str("version", resolved.Version).Int("stack", resolved.StackIndex).Msg("selected version")

	sel := &selection{resolved: resolved, exprText: req.exprText()}
	r.selected[req.Product] = sel

	tableDoc, err := r.readTable(resolved)
	if err != nil {
		if !req.Required {
			r.optFails = append(r.optFails, req.Product)
			return nil
		}
		return err
	}

	acts, err := table.Expand(tableDoc, table.Env{Flavor: r.flavor, Build: r.build})
	if err != nil {
		if !req.Required {
			r.optFails = append(r.optFails, req.Product)
			return nil
		}
		return errors.Wrapf(err, errors.CodeTableParseError, "expanding table file for %s %s", req.Product, resolved.Version)
	}

	childFrame := append(append([]frameEntry{}, frame...), frameEntry{product: req.Product, required: req.Required})

	var depProducts []string
	depReqs := map[string][]Request{}
	var ownActions []table.Action

	for _, act := range acts {
		if act.Name == "setupRequired" || act.Name == "setupOptional" {
			child, perr := r.childRequest(act)
			if perr != nil {
				return perr
			}
			if _, seen := depReqs[child.Product]; !seen {
				depProducts = append(depProducts, child.Product)
			}
			depReqs[child.Product] = append(depReqs[child.Product], child)
			continue
		}
		ownActions = append(ownActions, act)
	}

	for _, product := range depProducts {
		reqs := depReqs[product]
		for _, child := range reqs {
			if child.Required {
				r.required.record(req.Product, child.Product)
			}
		}
		if err := r.resolveChildGroup(reqs, childFrame); err != nil {
			return err
		}
	}

	r.order = append(r.order, resolved)
	for _, act := range ownActions {
		r.actions = append(r.actions, TaggedAction{Action: act, Product: resolved.Product, Version: resolved.Version})
	}

	return nil
}

// resolveChildGroup resolves every setupRequired/setupOptional edge a
// single table places on one product. When the product isn't yet
// resolved and isn't on the active recursion frame, its sibling
// constraints are intersected before a version is picked (spec.md §8
// scenario 2), so the order the constraints appear in the table cannot
// bias the choice. Otherwise each edge falls through to resolveOne's
// normal re-entrance/consistency handling.
func (r *Resolver) resolveChildGroup(reqs []Request, frame []frameEntry) error {
	product := reqs[0].Product
	_, alreadySelected := r.selected[product]
	onFrame := frameIndex(frame, product) >= 0

	if len(reqs) > 1 && !alreadySelected && !onFrame && hasVersionExpr(reqs) {
		return r.resolveMerged(reqs, frame)
	}

	for _, req := range reqs {
		if err := r.resolveOne(req, frame); err != nil {
			return err
		}
	}
	return nil
}

func hasVersionExpr(reqs []Request) bool {
	for _, req := range reqs {
		if req.VersionExpr != nil {
			return true
		}
	}
	return false
}

// resolveMerged picks one version for reqs, all naming the same
// not-yet-resolved product, that satisfies every sibling's version
// expression at once, then resolves it as reqs[0] would have resolved
// alone. A REUSED_DEPENDENCY warning is recorded for each sibling whose
// own constraint text differs from the one the selection is reported
// under, mirroring checkConsistency's warning for a later revisit.
func (r *Resolver) resolveMerged(reqs []Request, frame []frameEntry) error {
	required := false
	exprs := make([]*version.Expression, 0, len(reqs))
	texts := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if req.Required {
			required = true
		}
		if req.VersionExpr != nil {
			exprs = append(exprs, req.VersionExpr)
		}
		texts = append(texts, req.exprText())
	}

	product := reqs[0].Product
	resolved, ok, err := r.bestMatchingAll(product, exprs)
	if err != nil {
		return err
	}
	if !ok {
		if !required {
			r.optFails = append(r.optFails, product)
			return nil
		}
		return errors.InconsistentVersions(product, texts[0], strings.Join(texts[1:], ", "))
	}

	base := reqs[0]
	base.Required = required
	if err := r.proceedWithResolved(base, resolved, frame); err != nil {
		return err
	}

	if r.verbose >= 1 {
		for _, text := range texts[1:] {
			if text == texts[0] {
				continue
			}
			r.warnings = append(r.warnings, Warning{
				Code:    "REUSED_DEPENDENCY",
				Message: product + ": reused version " + resolved.Version + " (selected by " + texts[0] + ") for constraint " + text,
				Product: product,
			})
		}
	}
	return nil
}

// checkConsistency implements spec.md §4.4 step 3 for a product that was
// already fully resolved earlier in this graph (not on the active frame).
func (r *Resolver) checkConsistency(req Request, sel *selection) error {
	satisfies := true
	if req.VersionExpr != nil {
		satisfies = req.VersionExpr.Matches(sel.resolved.Version)
	} else {
		v, ok, err := r.resolveTagAcrossSources(req.Product, req.tagOrDefault())
		if err != nil {
			return err
		}
		satisfies = ok && v == sel.resolved.Version
	}

	if !satisfies {
		if !req.Required {
			r.optFails = append(r.optFails, req.Product)
			return nil
		}
		return errors.InconsistentVersions(req.Product, sel.exprText, req.exprText())
	}

	if req.exprText() != sel.exprText && r.verbose >= 1 {
		r.warnings = append(r.warnings, Warning{
			Code:    "REUSED_DEPENDENCY",
			Message: req.Product + ": reused version " + sel.resolved.Version + " (selected by " + sel.exprText + ") for constraint " + req.exprText(),
			Product: req.Product,
		})
	}
	return nil
}

// checkDuplicateDeclaration attaches a warning when resolved's version is
// also declared, with a different ProdDir, in a later stack than the one
// that supplied it. Per the recorded Open Question decision (DESIGN.md),
// the first-matching stack always wins the selection itself.
func (r *Resolver) checkDuplicateDeclaration(product string, resolved ResolvedProduct) {
	for _, s := range r.sources[resolved.StackIndex+1:] {
		rec, err := s.db.FindVersionRecord(product, resolved.Version)
		if err != nil || rec == nil {
			continue
		}
		info, ok := rec.Flavors[resolved.Flavor]
		if !ok || info.ProductDir == resolved.ProdDir {
			continue
		}
		r.warnings = append(r.warnings, Warning{
			Code:    "DUPLICATE_DECLARATION",
			Message: product + " " + resolved.Version + " also declared in " + s.stack.Root + " with a different product directory",
			Product: product,
		})
	}
}

// selectVersion performs spec.md §4.4 step 1: bare-version lookup,
// relational-expression highest-match, or tag resolution.
func (r *Resolver) selectVersion(req Request) (ResolvedProduct, error) {
	if bare, ok := req.VersionExpr.IsBareVersion(); ok {
		for _, s := range r.sources {
			rec, err := s.db.FindVersionRecord(req.Product, bare)
			if err != nil {
				continue
			}
			rp, ok := r.toResolvedProduct(req.Product, bare, s, rec)
			if ok {
				return rp, nil
			}
		}
		return ResolvedProduct{}, errors.NoMatchingVersion(req.Product, req.exprText())
	}

	if req.VersionExpr != nil && len(req.VersionExpr.Primaries) > 0 {
		resolved, ok, err := r.bestMatchingAll(req.Product, []*version.Expression{req.VersionExpr})
		if err != nil {
			return ResolvedProduct{}, err
		}
		if !ok {
			return ResolvedProduct{}, errors.NoMatchingVersion(req.Product, req.exprText())
		}
		return resolved, nil
	}

	tag := req.tagOrDefault()
	for _, s := range r.sources {
		v, ok, err := s.db.ResolveTag(req.Product, tag, r.flavor)
		if err != nil {
			return ResolvedProduct{}, err
		}
		if !ok {
			continue
		}
		rec, err := s.db.FindVersionRecord(req.Product, v)
		if err != nil {
			continue
		}
		rp, ok := r.toResolvedProduct(req.Product, v, s, rec)
		if ok {
			return rp, nil
		}
	}
	return ResolvedProduct{}, errors.NoMatchingVersion(req.Product, req.exprText())
}

// resolveTagAcrossSources resolves tag for product across every source in
// order, first match wins, mirroring selectVersion's tag branch.
func (r *Resolver) resolveTagAcrossSources(product, tag string) (string, bool, error) {
	for _, s := range r.sources {
		v, ok, err := s.db.ResolveTag(product, tag, r.flavor)
		if err != nil {
			return "", false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

// versionCandidate is one declared (product, version) pair considered
// during relational-expression resolution.
type versionCandidate struct {
	version string
	src     source
	rec     *db.VersionRecord
}

// candidatesFor lists every version of product, across sources in
// search order, that has a flavor declaration r.flavor can resolve
// (exact, then ANY, then NULL per spec.md §4.3).
func (r *Resolver) candidatesFor(product string) []versionCandidate {
	var candidates []versionCandidate
	for _, s := range r.sources {
		versions, err := s.stack.ListVersions(product)
		if err != nil {
			continue
		}
		for _, v := range versions {
			rec, err := s.db.FindVersionRecord(product, v)
			if err != nil || rec == nil {
				continue
			}
			if _, ok := flavorInfo(rec, r.flavor); !ok {
				continue
			}
			candidates = append(candidates, versionCandidate{version: v, src: s, rec: rec})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].src.index != candidates[j].src.index {
			return candidates[i].src.index < candidates[j].src.index
		}
		return candidates[i].version < candidates[j].version
	})
	return candidates
}

// bestMatchingAll returns the highest declared version of product that
// satisfies every expression in exprs, per spec.md §8 scenario 2: a
// product under several sibling version constraints is selected once,
// against all of them at once, rather than against whichever constraint
// is seen first.
func (r *Resolver) bestMatchingAll(product string, exprs []*version.Expression) (ResolvedProduct, bool, error) {
	candidates := r.candidatesFor(product)
	var best *versionCandidate
	for i := range candidates {
		c := &candidates[i]
		matches := true
		for _, e := range exprs {
			if e != nil && !e.Matches(c.version) {
				matches = false
				break
			}
		}
		if !matches {
			continue
		}
		if best == nil || version.Less(best.version, c.version) {
			best = c
		}
	}
	if best == nil {
		return ResolvedProduct{}, false, nil
	}
	rp, ok := r.toResolvedProduct(product, best.version, best.src, best.rec)
	return rp, ok, nil
}

// flavorInfo resolves rec's flavor payload for flavor, falling back to
// the pseudo-flavors ANY then NULL (spec.md §4.3's findVersionFile:
// "exact flavor, then ANY, then NULL").
func flavorInfo(rec *db.VersionRecord, flavor string) (db.VersionFlavorInfo, bool) {
	if info, ok := rec.Flavors[flavor]; ok {
		return info, true
	}
	if info, ok := rec.Flavors["ANY"]; ok {
		return info, true
	}
	if info, ok := rec.Flavors["NULL"]; ok {
		return info, true
	}
	return db.VersionFlavorInfo{}, false
}

func (r *Resolver) toResolvedProduct(product, v string, s source, rec *db.VersionRecord) (ResolvedProduct, bool) {
	info, ok := flavorInfo(rec, r.flavor)
	if !ok {
		return ResolvedProduct{}, false
	}
	return ResolvedProduct{
		Product:    product,
		Version:    v,
		Flavor:     r.flavor,
		StackIndex: s.index,
		ProdDir:    info.ProductDir,
		UpsDir:     info.UpsDir,
		TableFile:  info.TableFile,
	}, true
}

func (r *Resolver) readTable(rp ResolvedProduct) (*table.Document, error) {
	if rp.TableFile == "" {
		return nil, errors.TableErr(errors.CodeTableMissing, "", rp.Product, rp.Version, rp.Flavor, "Table file not declared")
	}
	path := filepath.Join(rp.ProdDir, rp.UpsDir, rp.TableFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.TableErr(errors.CodeTableMissing, path, rp.Product, rp.Version, rp.Flavor, "Table file not found")
	}
	doc, err := table.Parse(string(data))
	if err != nil {
		return nil, errors.TableErr(errors.CodeTableParseError, path, rp.Product, rp.Version, rp.Flavor, "Table parsing error: "+err.Error())
	}
	return doc, nil
}

// ChildRequest exposes childRequest's argument grammar to callers outside
// the package (pkg/cli's `setup -r` path, which resolves a local root's
// own setupRequired/setupOptional children through a fresh Resolver
// rather than recursing through resolveOne).
func ChildRequest(act table.Action) (Request, error) {
	return (&Resolver{}).childRequest(act)
}

// childRequest builds a Request for a setupRequired/setupOptional action's
// argument, per spec.md §4.2's
// `setupRequired("<product> [version-expr] [-f <flavor>] [-t <tag>] [-v] [-r <root>]")`
// grammar.
func (r *Resolver) childRequest(act table.Action) (Request, error) {
	product, exprText, tag, flavor := parseSetupArgs(act.Args)
	if product == "" {
		return Request{}, errors.Newf(errors.CodeTableParseError, "line %d: %s requires a product name", act.Line, act.Name)
	}
	// flavor is recorded on the request but not yet threaded through
	// resolution: a Resolver resolves a whole graph under one flavor
	// (see Resolver.flavor), so a per-edge "-f" override would need a
	// nested Resolver for that child rather than a field here. See
	// DESIGN.md.
	req := Request{Product: product, Tag: tag, Flavor: flavor, Required: act.Name == "setupRequired"}
	if exprText != "" {
		expr, err := version.ParseExpression(exprText)
		if err != nil {
			return Request{}, errors.Wrapf(err, errors.CodeTableParseError, "line %d: parsing version expression for %s", act.Line, product)
		}
		req.VersionExpr = expr
	}
	return req, nil
}

func parseSetupArgs(args []string) (product, exprText, tag, flavor string) {
	fields := strings.Fields(strings.Join(args, " "))
	if len(fields) == 0 {
		return "", "", "", ""
	}
	product = fields[0]
	var exprParts []string
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "-f":
			i++
			if i < len(fields) {
				flavor = fields[i]
			}
		case "-r":
			i++
		case "-t":
			i++
			if i < len(fields) {
				tag = fields[i]
			}
		case "-v":
		default:
			exprParts = append(exprParts, fields[i])
		}
	}
	exprText = strings.Join(exprParts, " ")
	return
}

func frameIndex(frame []frameEntry, product string) int {
	for i, f := range frame {
		if f.product == product {
			return i
		}
	}
	return -1
}

// cycleIsAllRequired reports whether the cycle closing at frame[0] (the
// previous occurrence of the revisited product) back to the present edge
// is composed entirely of required edges — spec.md §4.4 step 4's "true
// cycle in required edges".
func cycleIsAllRequired(closingFrame []frameEntry, closingEdgeRequired bool) bool {
	if !closingEdgeRequired {
		return false
	}
	for _, f := range closingFrame {
		if !f.required {
			return false
		}
	}
	return true
}
