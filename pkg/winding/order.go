package winding

import (
	"slices"

	"github.com/chazu/winding/pkg/mesh"
	"github.com/chazu/winding/pkg/topo"
)

// curveOrder is the cyclic angular order of the patches incident to
// one intersection curve. patches[i] and orient[i] are parallel:
// orient[i] is true when the incident face traverses the curve's
// representative edge against its canonical direction (the face's
// front sector lies between positions i and i+1).
type curveOrder struct {
	patches []int
	orient  []bool
}

// buildCurveOrders computes the cyclic incidence order of every
// intersection curve and the curves touching each patch. All incident
// faces of a curve's representative edge stand in for the whole curve:
// the arrangement is pre-split, so every edge of the curve sees the
// same patches.
func buildCurveOrders(
	m *mesh.Mesh,
	em *topo.EdgeMap,
	curves [][]int,
	facePatch []int,
	numPatches int,
	orderer FaceOrderer,
) ([]curveOrder, [][]int) {
	orders := make([]curveOrder, len(curves))
	patchCurves := make([][]int, numPatches)

	for ci, curve := range curves {
		e := curve[0]
		s, d := em.Edges[e][0], em.Edges[e][1]

		// Signed incidence list: +(fi+1) when the face runs d->s.
		hes := em.EdgeHalfEdges[e]
		signed := make([]int, len(hes))
		for i, he := range hes {
			fi := em.HalfEdgeFace(he)
			from, _ := em.HalfEdgeEnds(he)
			if from == d {
				signed[i] = fi + 1
			} else {
				signed[i] = -(fi + 1)
			}
			p := facePatch[fi]
			if !slices.Contains(patchCurves[p], ci) {
				patchCurves[p] = append(patchCurves[p], ci)
			}
		}

		perm := orderer.OrderFacesAroundEdge(m.Vertices, m.Faces, s, d, signed)

		co := curveOrder{
			patches: make([]int, len(perm)),
			orient:  make([]bool, len(perm)),
		}
		for i, idx := range perm {
			sf := signed[idx]
			co.orient[i] = sf > 0
			if sf < 0 {
				sf = -sf
			}
			co.patches[i] = facePatch[sf-1]
		}
		orders[ci] = co
	}
	return orders, patchCurves
}
