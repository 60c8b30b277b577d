package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAcyclicNoEdges(t *testing.T) {
	assert.NoError(t, checkAcyclic(&graph{}))
}

func TestGraphRecordAccumulatesEdges(t *testing.T) {
	g := &graph{}
	g.record("afw", "daf_base")
	g.record("daf_base", "cfitsio")
	assert.Len(t, g.edges, 2)
	assert.Equal(t, requiredEdge{from: "afw", to: "daf_base"}, g.edges[0])
}
