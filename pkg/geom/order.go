// Package geom implements the geometric predicates consumed by the
// winding-number propagation: angular ordering of faces around an
// edge, outer face determination, and nearest-face containment
// queries. Plain float64 arithmetic; inputs are assumed to be in
// general position (no exact predicates, no tie handling).
package geom

import (
	"math"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// OrderFacesAroundEdge orders the faces incident to the edge from
// vertex s to vertex d by their angle around that edge. signedFaces
// holds ±(face+1): positive when the face traverses the edge d->s.
// The returned permutation indexes into signedFaces and proceeds
// clockwise about the s->d direction, so the sector on the front side
// of a positively oriented face lies between it and its successor.
//
// Needs at least two incidences and assumes no two faces are
// coincident around the edge.
func OrderFacesAroundEdge(vertices []v3.Vec, faces [][3]int, s, d int, signedFaces []int) []int {
	axis := vertices[d].Sub(vertices[s]).Normalize()
	origin := vertices[s]

	type incidence struct {
		index int
		angle float64
	}
	inc := make([]incidence, len(signedFaces))

	// Direction from the edge toward the face's opposite vertex,
	// projected onto the plane normal to the edge.
	dir := func(sf int) v3.Vec {
		fi := sf
		if fi < 0 {
			fi = -fi
		}
		fi--
		var opp int
		for _, vi := range faces[fi] {
			if vi != s && vi != d {
				opp = vi
			}
		}
		w := vertices[opp].Sub(origin)
		return w.Sub(axis.MulScalar(w.Dot(axis)))
	}

	ref := dir(signedFaces[0])
	for i, sf := range signedFaces {
		w := dir(sf)
		// Clockwise angle about the s->d axis, in [0, 2*pi).
		a := math.Atan2(-ref.Cross(w).Dot(axis), ref.Dot(w))
		if a < 0 {
			a += 2 * math.Pi
		}
		inc[i] = incidence{index: i, angle: a}
	}
	inc[0].angle = 0

	sort.Slice(inc, func(i, j int) bool { return inc[i].angle < inc[j].angle })

	order := make([]int, len(inc))
	for i, in := range inc {
		order[i] = in.index
	}
	return order
}
