package winding_test

import (
	"testing"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/winding/pkg/mesh"
	"github.com/chazu/winding/pkg/mesh/meshtest"
	"github.com/chazu/winding/pkg/topo"
	"github.com/chazu/winding/pkg/winding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRows checks that every face in [lo, hi) carries the same
// winding vector.
func assertRows(t *testing.T, w winding.Table, lo, hi int, want []int) {
	t.Helper()
	for fi := lo; fi < hi; fi++ {
		assert.Equal(t, want, w.Row(fi), "face %d", fi)
	}
}

func TestPropagateClosedSolid(t *testing.T) {
	for name, m := range map[string]*mesh.Mesh{
		"tetrahedron": meshtest.Tetrahedron(),
		"octahedron":  meshtest.Octahedron(),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := winding.Propagate(m)
			require.NoError(t, err)
			assert.True(t, res.Consistent)
			assert.Equal(t, 1, res.NumLabels)
			// Outward normals: winding is 0 in front of every face and
			// 1 behind it.
			assertRows(t, res.Faces, 0, m.FaceCount(), []int{0, 1})
		})
	}
}

func TestPropagateFlippedSolid(t *testing.T) {
	m := meshtest.Flipped(meshtest.Octahedron())
	res, err := winding.Propagate(m)
	require.NoError(t, err)
	assert.True(t, res.Consistent)
	assertRows(t, res.Faces, 0, m.FaceCount(), []int{-1, 0})
}

func TestPropagateTwoBoxArrangement(t *testing.T) {
	m := meshtest.TwoBoxArrangement()
	res, err := winding.Propagate(m)
	require.NoError(t, err)
	assert.True(t, res.Consistent)
	require.Equal(t, 2, res.NumLabels)

	assertRows(t, res.Faces, 0, 18, []int{0, 1, 0, 0})  // A shell
	assertRows(t, res.Faces, 18, 20, []int{0, 1, 1, 1}) // disk inside B
	assertRows(t, res.Faces, 20, 30, []int{1, 1, 0, 1}) // B inside A
	assertRows(t, res.Faces, 30, 40, []int{0, 0, 0, 1}) // B outside A
}

func TestPropagateDeterministic(t *testing.T) {
	m := meshtest.TwoBoxArrangement()
	a, err := winding.Propagate(m)
	require.NoError(t, err)
	b, err := winding.Propagate(m)
	require.NoError(t, err)
	for fi := 0; fi < m.FaceCount(); fi++ {
		assert.Equal(t, a.Faces.Row(fi), b.Faces.Row(fi))
	}
}

func TestPropagateInconsistent(t *testing.T) {
	m := meshtest.TwoBoxInconsistent()
	res, err := winding.Propagate(m)
	require.NoError(t, err, "inconsistency is reported, not fatal")
	assert.False(t, res.Consistent)
	assert.True(t, res.Faces.Assigned(), "best-effort vectors are complete")
}

type recordingWriter struct {
	paths []string
}

func (r *recordingWriter) WriteMesh(path string, m *mesh.Mesh) error {
	r.paths = append(r.paths, path)
	return nil
}

func TestPropagateDebugDump(t *testing.T) {
	rec := &recordingWriter{}

	m := meshtest.TwoBoxInconsistent()
	res, err := winding.Propagate(m, winding.WithDebugWriter(rec, "debug_wn.stl"))
	require.NoError(t, err)
	assert.False(t, res.Consistent)
	assert.Equal(t, []string{"debug_wn.stl.0"}, rec.paths)

	// Consistent input never dumps.
	rec.paths = nil
	_, err = winding.Propagate(meshtest.Tetrahedron(), winding.WithDebugWriter(rec, "debug_wn.stl"))
	require.NoError(t, err)
	assert.Empty(t, rec.paths)
}

func TestPropagateOpenSurface(t *testing.T) {
	m := &mesh.Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	_, err := winding.Propagate(m)
	var topoErr *topo.TopologyError
	require.ErrorAs(t, err, &topoErr)
	assert.Equal(t, 1, topoErr.Degree)
}

func TestPropagateMixedLabelPatch(t *testing.T) {
	m := meshtest.Tetrahedron()
	m.Labels = []int{0, 1, 0, 0}
	_, err := winding.Propagate(m)
	require.ErrorContains(t, err, "mixes labels")
}

func TestPropagateInvalidMesh(t *testing.T) {
	m := &mesh.Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 5}},
	}
	_, err := winding.Propagate(m)
	require.ErrorContains(t, err, "references vertex")
}

func TestPropagateNestedComponents(t *testing.T) {
	// Distinct labels: the inner box sits at winding 1 of solid 0.
	m := meshtest.NestedBoxes(1)
	res, err := winding.Propagate(m)
	require.NoError(t, err)
	assert.True(t, res.Consistent)
	require.Equal(t, 2, res.NumLabels)
	assertRows(t, res.Faces, 0, 12, []int{0, 1, 0, 0})
	assertRows(t, res.Faces, 12, 24, []int{1, 1, 0, 1})
}

func TestPropagateNestedSameLabel(t *testing.T) {
	// Same label: the inner shell raises the winding of solid 0 to 2.
	m := meshtest.NestedBoxes(0)
	res, err := winding.Propagate(m)
	require.NoError(t, err)
	require.Equal(t, 1, res.NumLabels)
	assertRows(t, res.Faces, 0, 12, []int{0, 1})
	assertRows(t, res.Faces, 12, 24, []int{1, 2})
}

// tessellatedSphere welds a marching-cubes sphere and labels every
// face with the given solid.
func tessellatedSphere(t *testing.T, radius float64, label int) *mesh.Mesh {
	t.Helper()
	s, err := sdf.Sphere3D(radius)
	require.NoError(t, err)
	m := mesh.FromTriangles(render.ToTriangles(s, render.NewMarchingCubesUniform(16)))
	m.Labels = make([]int, m.FaceCount())
	for i := range m.Labels {
		m.Labels[i] = label
	}
	return m
}

func TestPropagateNestedTessellatedSpheres(t *testing.T) {
	// Two concentric marching-cubes shells: the component split hands
	// each one a sub-mesh sharing the merged vertex array, and the
	// nesting correction lifts the inner shell by the outer solid's
	// winding.
	outer := tessellatedSphere(t, 1.0, 0)
	inner := tessellatedSphere(t, 0.4, 1)
	m := mesh.Merge(outer, inner)

	res, err := winding.Propagate(m)
	require.NoError(t, err)
	assert.True(t, res.Consistent)
	require.Equal(t, 2, res.NumLabels)

	assertRows(t, res.Faces, 0, outer.FaceCount(), []int{0, 1, 0, 0})
	assertRows(t, res.Faces, outer.FaceCount(), m.FaceCount(), []int{1, 1, 0, 1})
}

func TestPropagateMarchingCubesSphere(t *testing.T) {
	s, err := sdf.Sphere3D(1)
	require.NoError(t, err)
	m := mesh.FromTriangles(render.ToTriangles(s, render.NewMarchingCubesUniform(16)))

	res, err := winding.Propagate(m)
	require.NoError(t, err)
	assert.True(t, res.Consistent)
	assertRows(t, res.Faces, 0, m.FaceCount(), []int{0, 1})
}

var _ winding.MeshWriter = mesh.STLWriter{}
