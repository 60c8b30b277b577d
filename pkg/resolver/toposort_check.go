package resolver

import (
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/gammazero/toposort"
)

// requiredEdge is one setupRequired edge recorded while walking the graph,
// independent of the frame-stack shortcut resolveOne takes while
// recursing. checkAcyclic runs as a whole-graph backstop after resolution
// completes: resolveOne's frame-stack check lets a product harmlessly
// re-enter through a path that isn't all required edges, but it never
// proves the *entire* required subgraph is acyclic by itself.
type requiredEdge struct {
	from, to string
}

// graph accumulates required edges seen during resolution; record is
// called from proceedWithResolved for each required child edge.
type graph struct {
	edges []requiredEdge
}

func (g *graph) record(from, to string) {
	g.edges = append(g.edges, requiredEdge{from: from, to: to})
}

// checkAcyclic runs gammazero/toposort over every required edge collected
// during resolution. It is a backstop: resolveOne's cycle detection
// already rejects any cycle composed entirely of required edges as it is
// discovered, so this should never fire in practice, but it protects
// against a required cycle that closes through a node visited twice on
// two disjoint, non-overlapping branches of the frame stack (which
// resolveOne's single active-path check cannot see).
func checkAcyclic(g *graph) error {
	if len(g.edges) == 0 {
		return nil
	}
	tsEdges := make([]toposort.Edge, len(g.edges))
	for i, e := range g.edges {
		tsEdges[i] = toposort.Edge{e.from, e.to}
	}
	if _, err := toposort.Toposort(tsEdges); err != nil {
		var chain []string
		seen := map[string]bool{}
		for _, e := range g.edges {
			if !seen[e.from] {
				chain = append(chain, e.from)
				seen[e.from] = true
			}
			if !seen[e.to] {
				chain = append(chain, e.to)
				seen[e.to] = true
			}
		}
		return errors.Cycle(chain)
	}
	return nil
}
