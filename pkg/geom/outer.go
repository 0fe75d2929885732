package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// OuterFace returns the globally outermost face of the arrangement and
// whether its normal points inward (flipped). It picks the face
// incident to the lexicographically extreme vertex whose plane is most
// orthogonal to the x axis; that face supports the convex hull at the
// extreme vertex, so nothing lies on its x-positive side.
func OuterFace(vertices []v3.Vec, faces [][3]int) (int, bool) {
	// Extreme vertex: max x, ties broken on y then z. Only vertices
	// the face list references count; the vertex array may be shared
	// with other components.
	ext := -1
	for _, f := range faces {
		for _, vi := range f {
			if ext == -1 {
				ext = vi
				continue
			}
			v, e := vertices[vi], vertices[ext]
			if v.X > e.X || (v.X == e.X && (v.Y > e.Y || (v.Y == e.Y && v.Z > e.Z))) {
				ext = vi
			}
		}
	}

	best := -1
	bestNX := math.Inf(-1)
	var bestN v3.Vec
	for fi, f := range faces {
		if f[0] != ext && f[1] != ext && f[2] != ext {
			continue
		}
		a := vertices[f[0]]
		n := vertices[f[1]].Sub(a).Cross(vertices[f[2]].Sub(a))
		if n.Length() == 0 {
			continue
		}
		nx := math.Abs(n.Normalize().X)
		if nx > bestNX {
			best, bestNX, bestN = fi, nx, n
		}
	}
	return best, bestN.X < 0
}
