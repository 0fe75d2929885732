package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ClosestFaces finds, for each query point, the nearest face of the
// given face list and whether the query lies on the outside of it
// (the side its normal points toward). Brute force over all faces;
// the nesting corrector issues O(components^2) queries against small
// face lists, which keeps this affordable.
func ClosestFaces(vertices []v3.Vec, faces [][3]int, queries []v3.Vec) ([]int, []bool) {
	fids := make([]int, len(queries))
	outside := make([]bool, len(queries))
	for qi, q := range queries {
		best := -1
		bestDist := 0.0
		var bestPoint v3.Vec
		for fi, f := range faces {
			cp := closestPointTriangle(q, vertices[f[0]], vertices[f[1]], vertices[f[2]])
			d := q.Sub(cp).Length2()
			if best == -1 || d < bestDist {
				best, bestDist, bestPoint = fi, d, cp
			}
		}
		f := faces[best]
		a := vertices[f[0]]
		n := vertices[f[1]].Sub(a).Cross(vertices[f[2]].Sub(a))
		fids[qi] = best
		outside[qi] = q.Sub(bestPoint).Dot(n) >= 0
	}
	return fids, outside
}

// closestPointTriangle returns the point of triangle abc closest to p.
func closestPointTriangle(p, a, b, c v3.Vec) v3.Vec {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.MulScalar(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.MulScalar(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		return b.Add(c.Sub(b).MulScalar((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	denom := 1 / (va + vb + vc)
	return a.Add(ab.MulScalar(vb * denom)).Add(ac.MulScalar(vc * denom))
}
