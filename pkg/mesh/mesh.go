// Package mesh provides the indexed triangle mesh consumed by the
// winding-number propagation pipeline. Faces are ordered vertex index
// triples; consistent counter-clockwise winding means the face normal
// points outward. Each face optionally carries a label identifying the
// input solid it originated from.
package mesh

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is an indexed triangle mesh. Labels is optional: nil means every
// face belongs to solid 0. A Mesh is treated as immutable once built.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][3]int
	Labels   []int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Label returns the label of face fi (0 when no labels are present).
func (m *Mesh) Label(fi int) int {
	if m.Labels == nil {
		return 0
	}
	return m.Labels[fi]
}

// NumLabels returns the number of distinct input solids, i.e. the
// maximum label plus one.
func (m *Mesh) NumLabels() int {
	n := 1
	for _, l := range m.Labels {
		if l+1 > n {
			n = l + 1
		}
	}
	return n
}

// FaceCentroid returns the centroid of face fi.
func (m *Mesh) FaceCentroid(fi int) v3.Vec {
	f := m.Faces[fi]
	return m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).DivScalar(3)
}

// FaceNormal returns the unit normal of face fi. Degenerate faces
// yield the zero vector.
func (m *Mesh) FaceNormal(fi int) v3.Vec {
	f := m.Faces[fi]
	a := m.Vertices[f[0]]
	n := m.Vertices[f[1]].Sub(a).Cross(m.Vertices[f[2]].Sub(a))
	if n.Length() == 0 {
		return v3.Vec{}
	}
	return n.Normalize()
}

// SubMesh returns a mesh containing only the given faces. Vertices are
// shared with the receiver, not copied. Labels are carried over.
func (m *Mesh) SubMesh(faceIDs []int) *Mesh {
	sub := &Mesh{
		Vertices: m.Vertices,
		Faces:    make([][3]int, len(faceIDs)),
	}
	if m.Labels != nil {
		sub.Labels = make([]int, len(faceIDs))
	}
	for i, fi := range faceIDs {
		sub.Faces[i] = m.Faces[fi]
		if m.Labels != nil {
			sub.Labels[i] = m.Labels[fi]
		}
	}
	return sub
}

// Merge concatenates meshes into one, offsetting face indices. The
// inputs must not share vertices.
func Merge(ms ...*Mesh) *Mesh {
	out := &Mesh{}
	for _, m := range ms {
		off := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices...)
		for fi, f := range m.Faces {
			out.Faces = append(out.Faces, [3]int{f[0] + off, f[1] + off, f[2] + off})
			out.Labels = append(out.Labels, m.Label(fi))
		}
	}
	return out
}

// Validate checks index bounds, label shape, and rejects topologically
// degenerate faces (repeated vertex indices).
func (m *Mesh) Validate() error {
	nv := len(m.Vertices)
	if m.Labels != nil && len(m.Labels) != len(m.Faces) {
		return fmt.Errorf("mesh: %d labels for %d faces", len(m.Labels), len(m.Faces))
	}
	for fi, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= nv {
				return fmt.Errorf("mesh: face %d references vertex %d of %d", fi, vi, nv)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("mesh: face %d is degenerate: %v", fi, f)
		}
	}
	for fi, l := range m.Labels {
		if l < 0 {
			return fmt.Errorf("mesh: face %d has negative label %d", fi, l)
		}
	}
	return nil
}
