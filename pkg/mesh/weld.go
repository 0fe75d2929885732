package mesh

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// weldRelTolerance scales with the model extent to give the absolute
// welding tolerance. Marching cubes emits the same surface point with
// small floating-point discrepancies between neighboring grid cells;
// those sit many orders of magnitude below the distance between
// distinct tessellation vertices.
const weldRelTolerance = 1e-9

// FromTriangles welds a triangle soup (as produced by sdfx marching
// cubes) into an indexed mesh. Vertices closer than a tolerance
// relative to the model extent are merged. Winding order is preserved.
func FromTriangles(tris []*sdf.Triangle3) *Mesh {
	m := &Mesh{
		Faces: make([][3]int, 0, len(tris)),
	}
	eps := weldTolerance(tris)

	type cell [3]int64
	index := make(map[cell]int, len(tris))
	quantize := func(v v3.Vec) cell {
		return cell{
			int64(math.Round(v.X / eps)),
			int64(math.Round(v.Y / eps)),
			int64(math.Round(v.Z / eps)),
		}
	}
	lookup := func(v v3.Vec) int {
		k := quantize(v)
		// Nearly equal coordinates can round into adjacent cells, so
		// the probe covers the 3x3x3 neighborhood.
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					if i, ok := index[cell{k[0] + dx, k[1] + dy, k[2] + dz}]; ok {
						return i
					}
				}
			}
		}
		i := len(m.Vertices)
		index[k] = i
		m.Vertices = append(m.Vertices, v)
		return i
	}

	for _, t := range tris {
		m.Faces = append(m.Faces, [3]int{lookup(t[0]), lookup(t[1]), lookup(t[2])})
	}
	return m
}

// weldTolerance derives the absolute welding tolerance from the
// largest coordinate magnitude in the soup.
func weldTolerance(tris []*sdf.Triangle3) float64 {
	extent := 0.0
	for _, t := range tris {
		for _, v := range t {
			extent = math.Max(extent, math.Abs(v.X))
			extent = math.Max(extent, math.Abs(v.Y))
			extent = math.Max(extent, math.Abs(v.Z))
		}
	}
	if extent == 0 {
		return weldRelTolerance
	}
	return extent * weldRelTolerance
}

// Triangles converts the mesh back to a triangle list for export.
func Triangles(m *Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = &sdf.Triangle3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
	}
	return tris
}
