package topo

import (
	"testing"

	"github.com/chazu/winding/pkg/mesh/meshtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionCurvesManifoldMesh(t *testing.T) {
	em := UniqueEdges(meshtest.Octahedron().Faces)
	assert.Empty(t, IntersectionCurves(em))
}

func TestIntersectionCurvesTwoBox(t *testing.T) {
	em := UniqueEdges(meshtest.TwoBoxArrangement().Faces)
	curves := IntersectionCurves(em)

	// The ring where B pierces A's wall chains into one closed curve.
	require.Len(t, curves, 1)
	require.Len(t, curves[0], 4)

	seen := map[int]bool{}
	for _, e := range curves[0] {
		assert.False(t, em.Manifold(e))
		assert.False(t, seen[e], "edge %d repeated", e)
		seen[e] = true
	}
	// Consecutive edges share a vertex, last wraps to first.
	for i, e := range curves[0] {
		next := curves[0][(i+1)%len(curves[0])]
		shared := 0
		for _, a := range em.Edges[e] {
			for _, b := range em.Edges[next] {
				if a == b {
					shared++
				}
			}
		}
		assert.Equal(t, 1, shared, "edges %d and %d", e, next)
	}
}

func TestFaceComponents(t *testing.T) {
	em := UniqueEdges(meshtest.Tetrahedron().Faces)
	n, comp := FaceComponents(em)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{0, 0, 0, 0}, comp)
}

func TestFaceComponentsNestedBoxes(t *testing.T) {
	m := meshtest.NestedBoxes(1)
	em := UniqueEdges(m.Faces)
	n, comp := FaceComponents(em)

	require.Equal(t, 2, n)
	for fi := 0; fi < 12; fi++ {
		assert.Equal(t, 0, comp[fi], "outer face %d", fi)
	}
	for fi := 12; fi < 24; fi++ {
		assert.Equal(t, 1, comp[fi], "inner face %d", fi)
	}
}
