package cli

import "github.com/RobertLuptonTheGood/eups/pkg/db"

// TagInfo is one (product, tag) pointer reported by the `tags` verb.
type TagInfo struct {
	Product string `json:"product" yaml:"product"`
	Tag     string `json:"tag" yaml:"tag"`
	Version string `json:"version" yaml:"version"`
	Flavor  string `json:"flavor" yaml:"flavor"`
}

// Tags lists every tag known across ctx's stacks. When product is
// non-empty, only that product's tags are reported; otherwise every
// product's tags are, grounded on python/eups/tags.py's
// Tags.getTagNames/Tags.getTags.
func Tags(ctx *Context, product string) ([]TagInfo, error) {
	var out []TagInfo
	for _, stack := range ctx.Stacks {
		products := []string{product}
		if product == "" {
			var err error
			products, err = stack.ListProducts()
			if err != nil {
				return nil, err
			}
		}
		for _, p := range products {
			tagNames, err := stack.ListTags(p)
			if err != nil {
				return nil, err
			}
			database := db.New(stack)
			for _, tag := range tagNames {
				rec, err := database.FindChainRecord(p, tag)
				if err != nil || rec == nil {
					continue
				}
				for flavor, version := range rec.Versions {
					out = append(out, TagInfo{Product: p, Tag: tag, Version: version, Flavor: flavor})
				}
			}
		}
	}
	return out, nil
}

// Tag points product's tag at version for flavor in stack, recording
// modifier as the tag's declarer metadata.
func Tag(ctx *Context, stackRoot, product, tag, flavor, version, modifier string) error {
	stack := declareStack(ctx, stackRoot)
	return db.New(stack).Tag(product, tag, flavor, version, modifier)
}

// Untag removes product's tag pointer for flavor in stack.
func Untag(ctx *Context, stackRoot, product, tag, flavor string) error {
	stack := declareStack(ctx, stackRoot)
	return db.New(stack).Untag(product, tag, flavor)
}
