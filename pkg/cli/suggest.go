package cli

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to 3 stack product names closest to name, for a
// "did you mean" hint attached to a NO_SUCH_PRODUCT diagnostic.
func Suggest(name string, candidates []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		return nil
	}
	sort.Sort(ranks)
	n := 3
	if len(ranks) < n {
		n = len(ranks)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranks[i].Target
	}
	return out
}

// AllProducts lists every product name declared across ctx's stacks, the
// candidate pool Suggest draws from.
func AllProducts(ctx *Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, stack := range ctx.Stacks {
		products, err := stack.ListProducts()
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out, nil
}
