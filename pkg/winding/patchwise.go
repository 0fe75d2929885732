package winding

import (
	"errors"
	"fmt"

	"github.com/chazu/winding/pkg/mesh"
	"github.com/chazu/winding/pkg/topo"
)

// ErrUnreachablePatch means the patch graph is not connected through
// its intersection curves, so BFS propagation could not assign every
// patch. The decomposition upstream produced a malformed component.
var ErrUnreachablePatch = errors.New("winding: patch unreachable from the outer patch")

// propagatePatches assigns a winding vector to every manifold patch of
// a single connected component by breadth-first propagation from the
// outermost patch, then verifies the closure invariant around every
// intersection curve. The returned bool is the consistency flag; a
// false value still comes with a complete best-effort table.
func propagatePatches(
	m *mesh.Mesh,
	em *topo.EdgeMap,
	curves [][]int,
	numPatches int,
	facePatch []int,
	patchLabels []int,
	numLabels int,
	orderer FaceOrderer,
	outer OuterFaceFinder,
) (Table, bool, error) {
	orders, patchCurves := buildCurveOrders(m, em, curves, facePatch, numPatches, orderer)

	w := NewTable(numPatches, 2*numLabels)

	// Seed: just outside everything the winding number of every label
	// is zero; crossing the outer patch inward raises its own label.
	outerFace, flipped := outer.OuterFace(m.Vertices, m.Faces)
	outerPatch := facePatch[outerFace]
	outerLabel := patchLabels[outerPatch]
	w.ZeroRow(outerPatch)
	if flipped {
		w.Set(outerPatch, 2*outerLabel, -1)
	} else {
		w.Set(outerPatch, 2*outerLabel+1, 1)
	}

	queue := []int{outerPatch}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, ci := range patchCurves[curr] {
			co := orders[ci]
			n := len(co.patches)

			pos := -1
			for i, p := range co.patches {
				if p == curr {
					pos = i
					break
				}
			}
			currOri := co.orient[pos]

			// The forward neighbor shares the current patch's front
			// sector, the backward neighbor its back sector; which
			// cyclic direction is forward depends on orientation.
			var nextPos, prevPos int
			if currOri {
				nextPos = (pos + 1) % n
				prevPos = (pos + n - 1) % n
			} else {
				nextPos = (pos + n - 1) % n
				prevPos = (pos + 1) % n
			}

			if next := co.patches[nextPos]; !w.RowAssigned(next) {
				cons := co.orient[nextPos] != currOri
				nextLabel := patchLabels[next]
				for k := 0; k < numLabels; k++ {
					shared := w.Front(curr, k)
					if k != nextLabel {
						w.Set(next, 2*k, shared)
						w.Set(next, 2*k+1, shared)
						continue
					}
					if cons {
						w.Set(next, 2*k, shared)
						w.Set(next, 2*k+1, shared+1)
					} else {
						w.Set(next, 2*k+1, shared)
						w.Set(next, 2*k, shared-1)
					}
				}
				queue = append(queue, next)
			}

			if prev := co.patches[prevPos]; !w.RowAssigned(prev) {
				cons := co.orient[prevPos] != currOri
				prevLabel := patchLabels[prev]
				for k := 0; k < numLabels; k++ {
					shared := w.Back(curr, k)
					if k != prevLabel {
						w.Set(prev, 2*k, shared)
						w.Set(prev, 2*k+1, shared)
						continue
					}
					if cons {
						w.Set(prev, 2*k+1, shared)
						w.Set(prev, 2*k, shared-1)
					} else {
						w.Set(prev, 2*k, shared)
						w.Set(prev, 2*k+1, shared+1)
					}
				}
				queue = append(queue, prev)
			}
		}
	}

	for p := 0; p < numPatches; p++ {
		if !w.RowAssigned(p) {
			return w, false, fmt.Errorf("%w: patch %d of %d", ErrUnreachablePatch, p, numPatches)
		}
	}

	return w, verifyCurveClosure(orders, w, numLabels), nil
}

// verifyCurveClosure re-walks the cyclic order of every curve and
// checks that consecutive patches agree on the winding number of the
// sector between them. Any mismatch means the arrangement does not
// bound a volume consistently.
func verifyCurveClosure(orders []curveOrder, w Table, numLabels int) bool {
	consistent := true
	for ci, co := range orders {
		n := len(co.patches)
		for j := 0; j < n; j++ {
			next := (j + 1) % n
			for k := 0; k < numLabels; k++ {
				currSide := 2 * k
				if !co.orient[j] {
					currSide++
				}
				nextSide := 2 * k
				if co.orient[next] {
					nextSide++
				}
				cw := w.At(co.patches[j], currSide)
				nw := w.At(co.patches[next], nextSide)
				if cw != nw {
					Logger().Warn("winding number closure violated",
						"curve", ci, "label", k,
						"patch", co.patches[j], "value", cw,
						"nextPatch", co.patches[next], "nextValue", nw)
					consistent = false
				}
			}
		}
	}
	return consistent
}

// expandToFaces copies each patch's winding vector onto its faces.
func expandToFaces(patchW Table, facePatch []int) Table {
	w := NewTable(len(facePatch), patchW.Cols)
	for fi, p := range facePatch {
		copy(w.Row(fi), patchW.Row(p))
	}
	return w
}
