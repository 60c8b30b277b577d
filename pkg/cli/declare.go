package cli

import (
	stderrors "errors"
	"time"

	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
)

// DeclareOptions mirrors the `declare` verb's arguments (spec.md §4.3).
type DeclareOptions struct {
	Product    string
	Version    string
	Flavor     string
	ProductDir string
	UpsDir     string
	TableFile  string
	Qualifiers string
	Tags       []string // -t, may repeat; applied after the version is declared
	StackRoot  string    // -Z; defaults to the first configured stack
	Declarer   string
}

// Declare writes opts as a new, or updated, VersionRecord, then applies
// any requested tags. fails with EXISTS_DIFFERENT if the product/version
// is already declared under a different flavor's directory for the same
// flavor key without -F (force overwrite is left to the caller, which
// passes force=true to skip the check entirely).
func Declare(ctx *Context, opts DeclareOptions, force bool) error {
	stack := declareStack(ctx, opts.StackRoot)
	database := db.New(stack)

	existing, err := database.FindVersionRecord(opts.Product, opts.Version)
	if err != nil {
		var eupsErr *errors.EupsError
		if !stderrors.As(err, &eupsErr) || eupsErr.Code != errors.CodeNoSuchProduct {
			return err
		}
		existing = nil
	}
	if existing != nil && !force {
		if info, ok := existing.Flavors[opts.Flavor]; ok && info.ProductDir != opts.ProductDir {
			return errors.Newf(errors.CodeExistsDifferent,
				"%s %s is already declared for flavor %s with product dir %s",
				opts.Product, opts.Version, opts.Flavor, info.ProductDir)
		}
	}
	if existing == nil {
		existing = &db.VersionRecord{
			Product: opts.Product,
			Version: opts.Version,
			Flavors: map[string]db.VersionFlavorInfo{},
		}
	}
	tableFile := opts.TableFile
	if tableFile == "" {
		tableFile = opts.Product + ".table"
	}
	existing.Flavors[opts.Flavor] = db.VersionFlavorInfo{
		Qualifiers: opts.Qualifiers,
		ProductDir: opts.ProductDir,
		UpsDir:     opts.UpsDir,
		TableFile:  tableFile,
	}
	if opts.Declarer != "" {
		existing.Declarer = opts.Declarer
	}
	existing.ModifiedAt = time.Now().UTC().Format(time.RFC3339)

	if err := database.Declare(existing); err != nil {
		return err
	}

	for _, tag := range opts.Tags {
		if err := database.Tag(opts.Product, tag, opts.Flavor, opts.Version, opts.Declarer); err != nil {
			return err
		}
	}
	return nil
}

// Undeclare removes product/version's declaration from stack.
func Undeclare(ctx *Context, product, version, stackRoot string) error {
	stack := declareStack(ctx, stackRoot)
	return db.New(stack).Undeclare(product, version)
}

func declareStack(ctx *Context, stackRoot string) *db.Stack {
	if stackRoot != "" {
		return db.NewStack(stackRoot)
	}
	if len(ctx.Stacks) > 0 {
		return ctx.Stacks[0]
	}
	return db.NewStack(ctx.Home)
}
