// Package topo derives the combinatorial structure of a triangulated
// arrangement: unique edges, manifold patches, intersection curves,
// and connected components. It operates purely on face index triples;
// no geometry is consulted.
package topo

import (
	"fmt"
	"sort"
)

// A half-edge is identified by corner*numFaces + face, so that the
// three half-edges of face f are f, f+numFaces, and f+2*numFaces.
// Half-edge (f, c) is the edge opposite corner c: it runs from vertex
// (c+1)%3 to vertex (c+2)%3 of face f.

// EdgeMap groups the half-edges of a face list into unique edges.
type EdgeMap struct {
	// Edges lists the unique edges as vertex index pairs, low index
	// first.
	Edges [][2]int
	// FaceEdge maps (face, corner) to a unique edge id.
	FaceEdge [][3]int
	// EdgeHalfEdges lists the half-edge ids incident to each unique
	// edge. The degree of an edge is the length of its entry.
	EdgeHalfEdges [][]int

	faces    [][3]int
	numFaces int
}

// TopologyError reports an edge whose degree makes winding-number
// propagation ill-defined.
type TopologyError struct {
	Edge   int
	Degree int
	V      [2]int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topo: edge %d (vertices %d-%d) has odd degree %d: input is not a closed volume boundary",
		e.Edge, e.V[0], e.V[1], e.Degree)
}

// UniqueEdges builds the unique-edge map of a face list.
func UniqueEdges(faces [][3]int) *EdgeMap {
	numFaces := len(faces)
	em := &EdgeMap{
		FaceEdge: make([][3]int, numFaces),
		faces:    faces,
		numFaces: numFaces,
	}

	type halfEdge struct {
		lo, hi int
		id     int
	}
	all := make([]halfEdge, 0, 3*numFaces)
	for fi, f := range faces {
		for c := 0; c < 3; c++ {
			a, b := f[(c+1)%3], f[(c+2)%3]
			if a > b {
				a, b = b, a
			}
			all = append(all, halfEdge{lo: a, hi: b, id: c*numFaces + fi})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].lo != all[j].lo {
			return all[i].lo < all[j].lo
		}
		return all[i].hi < all[j].hi
	})

	for i := 0; i < len(all); {
		j := i
		for j < len(all) && all[j].lo == all[i].lo && all[j].hi == all[i].hi {
			j++
		}
		eid := len(em.Edges)
		em.Edges = append(em.Edges, [2]int{all[i].lo, all[i].hi})
		hes := make([]int, 0, j-i)
		for k := i; k < j; k++ {
			he := all[k].id
			hes = append(hes, he)
			em.FaceEdge[he%numFaces][he/numFaces] = eid
		}
		em.EdgeHalfEdges = append(em.EdgeHalfEdges, hes)
		i = j
	}
	return em
}

// NumEdges returns the number of unique edges.
func (em *EdgeMap) NumEdges() int {
	return len(em.Edges)
}

// Degree returns the number of half-edges incident to edge e.
func (em *EdgeMap) Degree(e int) int {
	return len(em.EdgeHalfEdges[e])
}

// Manifold reports whether edge e has exactly two incident faces.
func (em *EdgeMap) Manifold(e int) bool {
	return em.Degree(e) == 2
}

// HalfEdgeFace returns the face a half-edge id belongs to.
func (em *EdgeMap) HalfEdgeFace(he int) int {
	return he % em.numFaces
}

// HalfEdgeEnds returns the vertices a half-edge runs from and to, in
// the face's own winding order.
func (em *EdgeMap) HalfEdgeEnds(he int) (from, to int) {
	f := em.faces[he%em.numFaces]
	c := he / em.numFaces
	return f[(c+1)%3], f[(c+2)%3]
}

// OddDegree returns a TopologyError for the first odd-degree edge, or
// nil when every edge has even degree. Odd degree means an open
// boundary or an invalid junction; propagation must not be attempted.
func (em *EdgeMap) OddDegree() error {
	for e, hes := range em.EdgeHalfEdges {
		if len(hes)%2 == 1 {
			return &TopologyError{Edge: e, Degree: len(hes), V: em.Edges[e]}
		}
	}
	return nil
}

// IsOrientable reports whether, for every unique edge, the incident
// half-edge directions cancel out. A closed orientable boundary always
// satisfies this.
func (em *EdgeMap) IsOrientable() bool {
	for e, hes := range em.EdgeHalfEdges {
		s := em.Edges[e][0]
		count := 0
		for _, he := range hes {
			if from, _ := em.HalfEdgeEnds(he); from == s {
				count++
			} else {
				count--
			}
		}
		if count != 0 {
			return false
		}
	}
	return true
}
