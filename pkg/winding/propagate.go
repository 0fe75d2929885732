// Package winding computes consistent generalized winding numbers for
// arrangements of triangulated surface meshes. For every face and
// every input solid it reports how many times the solid winds around
// points just in front of and just behind the face; boolean mesh
// operations use these numbers to classify which parts of an
// arrangement to keep.
//
// The default path propagates winding vectors across manifold patches
// using the angular order of patches around the intersection curves
// (Propagate). An alternate, coarser-grained path propagates across
// the cells of a volumetric decomposition (PropagateCells). Both
// detect arrangements that do not consistently bound volumes and
// report them through the Consistent flag rather than failing.
package winding

import (
	"fmt"

	"github.com/chazu/winding/pkg/mesh"
	"github.com/chazu/winding/pkg/topo"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Result holds per-face winding vectors for the whole arrangement.
type Result struct {
	// Faces has one row per input face and 2*NumLabels columns: for
	// each label, the winding number on the face's front side (where
	// its normal points) then on its back side.
	Faces Table
	// NumLabels is the number of input solids.
	NumLabels int
	// Consistent is false when any component violated the closure
	// invariant (or, on the cell path, bipartite validity). The
	// winding vectors are then best-effort.
	Consistent bool
}

// component is one connected piece of the arrangement, propagated
// independently and stitched to the others by the nesting corrector.
type component struct {
	faceIDs []int // global face ids
	mesh    *mesh.Mesh
}

// Propagate computes winding vectors for every face of the
// arrangement using patch-wise propagation. Faces must form a closed
// (possibly self-intersecting) boundary: any edge with an odd number
// of incident faces aborts with a *topo.TopologyError before
// propagation starts. Inconsistent components are reported via
// Result.Consistent, logged, and optionally dumped via
// WithDebugWriter; they do not abort.
func Propagate(m *mesh.Mesh, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return propagate(m, o, func(c *component, ci int) (Table, int, bool, error) {
		return propagatePatchComponent(c.mesh, o)
	})
}

// PropagateCells computes the same winding vectors by propagating
// across the cell decomposition produced by dec. An odd cycle in a
// component's cell graph marks the result inconsistent but the
// propagation still runs for diagnostic value.
func PropagateCells(m *mesh.Mesh, dec CellDecomposer, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return propagate(m, o, func(c *component, ci int) (Table, int, bool, error) {
		return propagateCellComponent(c.mesh, dec, o)
	})
}

// propagate splits the arrangement into connected components, runs
// perComponent on each, embeds the per-component tables into the
// global one, and applies the nesting correction.
func propagate(
	m *mesh.Mesh,
	o options,
	perComponent func(c *component, ci int) (Table, int, bool, error),
) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	em := topo.UniqueEdges(m.Faces)
	if err := em.OddDegree(); err != nil {
		return nil, err
	}

	numComps, faceComp := topo.FaceComponents(em)
	comps := make([]*component, numComps)
	for ci := range comps {
		comps[ci] = &component{}
	}
	for fi, ci := range faceComp {
		comps[ci].faceIDs = append(comps[ci].faceIDs, fi)
	}
	for _, c := range comps {
		c.mesh = m.SubMesh(c.faceIDs)
	}

	numLabels := m.NumLabels()
	w := NewZeroTable(m.FaceCount(), 2*numLabels)
	consistent := true

	for ci, c := range comps {
		compW, compLabels, ok, err := perComponent(c, ci)
		if err != nil {
			return nil, fmt.Errorf("winding: component %d: %w", ci, err)
		}
		if !ok {
			consistent = false
			Logger().Warn("inconsistent winding number assignment",
				"component", ci, "faces", len(c.faceIDs))
			dumpComponent(c, ci, o)
		}
		// Embed: component labels are a prefix of the global label
		// range, so the block lands at the left of the row.
		for j, fid := range c.faceIDs {
			copy(w.Row(fid)[:2*compLabels], compW.Row(j))
		}
	}

	if numComps > 1 {
		applyAmbientCorrections(comps, w, numLabels, o.closest)
	}

	return &Result{Faces: w, NumLabels: numLabels, Consistent: consistent}, nil
}

// propagatePatchComponent runs the patch-wise path (curve ordering,
// BFS, closure verification) on one connected component.
func propagatePatchComponent(m *mesh.Mesh, o options) (Table, int, bool, error) {
	em := topo.UniqueEdges(m.Faces)
	numPatches, facePatch := topo.ManifoldPatches(em)
	patchLabels, err := topo.PatchLabels(m.Labels, facePatch, numPatches)
	if err != nil {
		return Table{}, 0, false, err
	}
	numLabels := maxLabel(patchLabels) + 1
	curves := topo.IntersectionCurves(em)

	patchW, consistent, err := propagatePatches(
		m, em, curves, numPatches, facePatch, patchLabels, numLabels,
		o.orderer, o.outer)
	if err != nil {
		return Table{}, 0, false, err
	}
	return expandToFaces(patchW, facePatch), numLabels, consistent, nil
}

// propagateCellComponent runs the cell-wise path on one connected
// component.
func propagateCellComponent(m *mesh.Mesh, dec CellDecomposer, o options) (Table, int, bool, error) {
	em := topo.UniqueEdges(m.Faces)
	numPatches, facePatch := topo.ManifoldPatches(em)
	patchLabels, err := topo.PatchLabels(m.Labels, facePatch, numPatches)
	if err != nil {
		return Table{}, 0, false, err
	}
	numLabels := maxLabel(patchLabels) + 1

	consistent := true
	if !em.IsOrientable() {
		consistent = false
		Logger().Warn("component is not orientable, cell propagation is unreliable")
	}

	numCells, patchCells, err := dec.Cells(m, em, numPatches, facePatch)
	if err != nil {
		return Table{}, 0, false, fmt.Errorf("cell decomposition: %w", err)
	}

	g := newCellGraph(numCells, patchCells)
	if ok, cycle := g.bipartite(); !ok {
		consistent = false
		Logger().Warn("odd cell cycle detected", "cycle", cycle)
	}

	outerFace, flipped := o.outer.OuterFace(m.Vertices, m.Faces)
	outerPatch := facePatch[outerFace]
	side := 0
	if flipped {
		side = 1
	}
	infinityCell := patchCells[outerPatch][side]

	cellW, err := propagateCells(g, infinityCell, patchLabels, numLabels)
	if err != nil {
		return Table{}, 0, false, err
	}
	return cellsToFaces(cellW, patchCells, facePatch, numLabels), numLabels, consistent, nil
}

// applyAmbientCorrections stitches independently propagated
// components together. For every ordered component pair (i, j) it
// samples a point of j, finds the nearest face of i, and reads i's
// winding vector on the side facing the sample; the sum over all i is
// the constant ambient winding j sits inside of, added to every face
// of j. Corrections are computed from the uncorrected tables of all
// components before any are applied.
func applyAmbientCorrections(comps []*component, w Table, numLabels int, closest ContainmentQuerier) {
	n := len(comps)
	corr := NewZeroTable(n, 2*numLabels)

	for i, ci := range comps {
		samples := make([]v3.Vec, 0, n-1)
		sampleComp := make([]int, 0, n-1)
		for j, cj := range comps {
			if j == i {
				continue
			}
			samples = append(samples, cj.mesh.FaceCentroid(0))
			sampleComp = append(sampleComp, j)
		}
		fids, outside := closest.ClosestFaces(ci.mesh.Vertices, ci.mesh.Faces, samples)
		for idx, j := range sampleComp {
			fid := ci.faceIDs[fids[idx]]
			side := 1
			if outside[idx] {
				side = 0
			}
			for k := 0; k < numLabels; k++ {
				c := w.At(fid, 2*k+side)
				corr.Set(j, 2*k, corr.At(j, 2*k)+c)
				corr.Set(j, 2*k+1, corr.At(j, 2*k+1)+c)
			}
		}
	}

	for i, c := range comps {
		row := corr.Row(i)
		for _, fid := range c.faceIDs {
			dst := w.Row(fid)
			for col, x := range row {
				dst[col] += x
			}
		}
	}
}

// dumpComponent writes an inconsistent component's mesh for offline
// inspection when a debug writer is configured.
func dumpComponent(c *component, ci int, o options) {
	if o.debugWriter == nil {
		return
	}
	path := fmt.Sprintf("%s.%d", o.debugPath, ci)
	if err := o.debugWriter.WriteMesh(path, c.mesh); err != nil {
		Logger().Warn("debug mesh dump failed", "path", path, "error", err)
		return
	}
	Logger().Info("dumped inconsistent component", "path", path, "component", ci)
}

func maxLabel(labels []int) int {
	m := 0
	for _, l := range labels {
		if l > m {
			m = l
		}
	}
	return m
}
