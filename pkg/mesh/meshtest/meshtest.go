// Package meshtest builds small hand-verified meshes used by tests
// across the module. All fixtures are closed and outward-oriented
// unless the name says otherwise.
package meshtest

import (
	"github.com/chazu/winding/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Tetrahedron returns a closed tetrahedron with outward normals.
func Tetrahedron() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []v3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Faces: [][3]int{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	}
}

// Octahedron returns a closed octahedron centered at the origin.
func Octahedron() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []v3.Vec{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		Faces: [][3]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	}
}

// Flipped returns a copy of m with every face winding reversed, so all
// normals point the other way.
func Flipped(m *mesh.Mesh) *mesh.Mesh {
	out := &mesh.Mesh{
		Vertices: m.Vertices,
		Faces:    make([][3]int, len(m.Faces)),
	}
	if m.Labels != nil {
		out.Labels = append([]int(nil), m.Labels...)
	}
	for i, f := range m.Faces {
		out.Faces[i] = [3]int{f[0], f[2], f[1]}
	}
	return out
}

// Box returns a 12-triangle axis-aligned box from min to max with
// outward normals and the given face label.
func Box(min, max v3.Vec, label int) *mesh.Mesh {
	v := []v3.Vec{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
	f := [][3]int{
		{0, 4, 7}, {0, 7, 3}, // x = min
		{1, 2, 6}, {1, 6, 5}, // x = max
		{0, 1, 5}, {0, 5, 4}, // y = min
		{2, 3, 7}, {2, 7, 6}, // y = max
		{0, 3, 2}, {0, 2, 1}, // z = min
		{4, 5, 6}, {4, 6, 7}, // z = max
	}
	labels := make([]int, len(f))
	for i := range labels {
		labels[i] = label
	}
	return &mesh.Mesh{Vertices: v, Faces: f, Labels: labels}
}

// NestedBoxes returns two disjoint closed boxes, the second strictly
// inside the first. innerLabel lets tests choose between same-label
// and distinct-label nesting.
func NestedBoxes(innerLabel int) *mesh.Mesh {
	outer := Box(v3.Vec{}, v3.Vec{X: 4, Y: 4, Z: 4}, 0)
	inner := Box(v3.Vec{X: 1, Y: 1, Z: 1}, v3.Vec{X: 3, Y: 3, Z: 3}, innerLabel)
	return mesh.Merge(outer, inner)
}

// TwoBoxArrangement returns the arrangement of two overlapping solids:
// cube A = [0,2]^3 (label 0) and box B = [1,3]x[0.5,1.5]x[0.5,1.5]
// (label 1) poking through A's x=2 wall. The surfaces are pre-split
// along their intersection, so the four edges of the square where B
// pierces the wall are degree-4 non-manifold and form one closed
// intersection curve.
//
// Patches, in face order:
//
//	faces  0..17  A shell (five walls plus the x=2 wall frame)
//	faces 18..19  the disk of A's wall inside B
//	faces 20..29  B's walls and cap inside A
//	faces 30..39  B's walls and cap outside A
func TwoBoxArrangement() *mesh.Mesh {
	v := []v3.Vec{
		// A cube corners.
		{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 2, Z: 0}, {X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2}, {X: 2, Y: 0, Z: 2}, {X: 2, Y: 2, Z: 2}, {X: 0, Y: 2, Z: 2},
		// Ring where B pierces the x=2 wall.
		{X: 2, Y: 0.5, Z: 0.5}, {X: 2, Y: 1.5, Z: 0.5}, {X: 2, Y: 1.5, Z: 1.5}, {X: 2, Y: 0.5, Z: 1.5},
		// B cap at x=1 (inside A).
		{X: 1, Y: 0.5, Z: 0.5}, {X: 1, Y: 1.5, Z: 0.5}, {X: 1, Y: 1.5, Z: 1.5}, {X: 1, Y: 0.5, Z: 1.5},
		// B cap at x=3 (outside A).
		{X: 3, Y: 0.5, Z: 0.5}, {X: 3, Y: 1.5, Z: 0.5}, {X: 3, Y: 1.5, Z: 1.5}, {X: 3, Y: 0.5, Z: 1.5},
	}
	f := [][3]int{
		// A shell: five plain walls.
		{0, 4, 7}, {0, 7, 3}, // x = 0
		{0, 1, 5}, {0, 5, 4}, // y = 0
		{2, 3, 7}, {2, 7, 6}, // y = 2
		{0, 3, 2}, {0, 2, 1}, // z = 0
		{4, 5, 6}, {4, 6, 7}, // z = 2
		// A shell: x = 2 wall frame around the ring.
		{1, 2, 8}, {2, 9, 8},
		{2, 6, 9}, {6, 10, 9},
		{6, 5, 10}, {5, 11, 10},
		{5, 1, 11}, {1, 8, 11},
		// Disk: the part of A's wall inside B.
		{8, 9, 10}, {8, 10, 11},
		// B inside A: four wall strips and the x=1 cap.
		{12, 13, 9}, {12, 9, 8}, // z = 0.5
		{15, 11, 10}, {15, 10, 14}, // z = 1.5
		{12, 8, 11}, {12, 11, 15}, // y = 0.5
		{13, 14, 10}, {13, 10, 9}, // y = 1.5
		{12, 15, 14}, {12, 14, 13}, // x = 1 cap
		// B outside A: four wall strips and the x=3 cap.
		{8, 9, 17}, {8, 17, 16}, // z = 0.5
		{11, 19, 18}, {11, 18, 10}, // z = 1.5
		{8, 16, 19}, {8, 19, 11}, // y = 0.5
		{9, 10, 18}, {9, 18, 17}, // y = 1.5
		{16, 17, 18}, {16, 18, 19}, // x = 3 cap
	}
	labels := make([]int, len(f))
	for i := 20; i < len(f); i++ {
		labels[i] = 1
	}
	return &mesh.Mesh{Vertices: v, Faces: f, Labels: labels}
}

// TwoBoxInconsistent is TwoBoxArrangement with the disk patch flipped,
// producing an arrangement that violates the closure invariant around
// the intersection curve without changing any edge degree.
func TwoBoxInconsistent() *mesh.Mesh {
	m := TwoBoxArrangement()
	for _, fi := range []int{18, 19} {
		m.Faces[fi] = [3]int{m.Faces[fi][0], m.Faces[fi][2], m.Faces[fi][1]}
	}
	return m
}
