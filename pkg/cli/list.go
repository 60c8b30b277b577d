package cli

import (
	"github.com/RobertLuptonTheGood/eups/pkg/db"
	"github.com/RobertLuptonTheGood/eups/pkg/session"
)

// ListFilter narrows the `list` verb's output: an empty Product lists
// every product; an empty Flavor lists every declared flavor.
type ListFilter struct {
	Product string
	Flavor  string
}

// ProductListing is one (product, version, flavor) row of `list`'s
// output, per spec.md §4.3's listProducts operation.
type ProductListing struct {
	Product string   `json:"product" yaml:"product"`
	Version string   `json:"version" yaml:"version"`
	Flavor  string   `json:"flavor" yaml:"flavor"`
	Stack   string   `json:"stack" yaml:"stack"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	IsSetup bool     `json:"isSetup" yaml:"isSetup"`
}

// List enumerates every declared (product, version, flavor) across ctx's
// stacks matching filter, annotating each with the tags pointing at it
// and whether it is the version currently set up in this process's
// environment.
func List(ctx *Context, filter ListFilter) ([]ProductListing, error) {
	var out []ProductListing
	for _, stack := range ctx.Stacks {
		rows, err := listStack(ctx, stack, filter)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

func listStack(ctx *Context, stack *db.Stack, filter ListFilter) ([]ProductListing, error) {
	products := []string{filter.Product}
	if filter.Product == "" {
		var err error
		products, err = stack.ListProducts()
		if err != nil {
			return nil, err
		}
	}

	database := db.New(stack)
	var out []ProductListing
	for _, product := range products {
		versions, err := stack.ListVersions(product)
		if err != nil {
			return nil, err
		}
		tagsByFlavorVersion, err := tagPointers(database, stack, product)
		if err != nil {
			return nil, err
		}

		for _, version := range versions {
			rec, err := database.FindVersionRecord(product, version)
			if err != nil || rec == nil {
				continue
			}
			for flavor := range rec.Flavors {
				if filter.Flavor != "" && flavor != filter.Flavor {
					continue
				}
				row := ProductListing{
					Product: product,
					Version: version,
					Flavor:  flavor,
					Stack:   stack.Root,
					Tags:    tagsByFlavorVersion[flavor][version],
					IsSetup: isSetup(ctx, product, version),
				}
				out = append(out, row)
			}
		}
	}
	return out, nil
}

// tagPointers builds flavor -> version -> tag-names for product, so List
// can annotate each row without re-reading every chain file per version.
func tagPointers(database *db.Database, stack *db.Stack, product string) (map[string]map[string][]string, error) {
	tagNames, err := stack.ListTags(product)
	if err != nil {
		return nil, err
	}
	out := map[string]map[string][]string{}
	for _, tag := range tagNames {
		rec, err := database.FindChainRecord(product, tag)
		if err != nil || rec == nil {
			continue
		}
		for flavor, version := range rec.Versions {
			if out[flavor] == nil {
				out[flavor] = map[string][]string{}
			}
			out[flavor][version] = append(out[flavor][version], tag)
		}
	}
	return out, nil
}

func isSetup(ctx *Context, product, version string) bool {
	varName := "SETUP_" + upper(product)
	raw, ok := ctx.State.Vars[varName]
	if !ok {
		return false
	}
	m, err := session.ParseMarker(raw)
	return err == nil && m.Version == version
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
