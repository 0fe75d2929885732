package winding

import (
	"testing"

	"github.com/chazu/winding/pkg/mesh/meshtest"
	"github.com/chazu/winding/pkg/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCurveOrders(t *testing.T) {
	m := meshtest.TwoBoxArrangement()
	em := topo.UniqueEdges(m.Faces)
	numPatches, facePatch := topo.ManifoldPatches(em)
	curves := topo.IntersectionCurves(em)
	require.Len(t, curves, 1)
	require.Equal(t, 4, numPatches)

	orders, patchCurves := buildCurveOrders(m, em, curves, facePatch, numPatches, geomOrderer{})
	require.Len(t, orders, 1)

	co := orders[0]
	require.Len(t, co.patches, 4)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, co.patches)

	// Around the piercing ring, A's wall frame (patch 0) and the disk
	// (patch 1) sit on opposite sides, separated by B's two wall
	// patches. They can never be cyclic neighbors.
	for i, p := range co.patches {
		next := co.patches[(i+1)%4]
		if p == 0 {
			assert.NotEqual(t, 1, next)
		}
		if p == 1 {
			assert.NotEqual(t, 0, next)
		}
	}

	// Every patch touches the single curve exactly once.
	for p := 0; p < numPatches; p++ {
		assert.Equal(t, []int{0}, patchCurves[p], "patch %d", p)
	}
}
