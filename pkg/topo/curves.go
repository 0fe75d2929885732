package topo

// IntersectionCurves chains the non-manifold edges into maximal
// curves. Two non-manifold edges are consecutive when they share a
// vertex at which exactly two non-manifold edges meet; chains end at
// junction vertices and curve endpoints, and leftover edges form
// closed loops. Each curve is a list of unique edge ids.
func IntersectionCurves(em *EdgeMap) [][]int {
	// Non-manifold edges incident to each vertex.
	vertEdges := make(map[int][]int)
	var nmEdges []int
	for e := range em.Edges {
		if em.Degree(e) <= 2 {
			continue
		}
		nmEdges = append(nmEdges, e)
		vertEdges[em.Edges[e][0]] = append(vertEdges[em.Edges[e][0]], e)
		vertEdges[em.Edges[e][1]] = append(vertEdges[em.Edges[e][1]], e)
	}
	if len(nmEdges) == 0 {
		return nil
	}

	visited := make(map[int]bool, len(nmEdges))
	otherEnd := func(e, v int) int {
		if em.Edges[e][0] == v {
			return em.Edges[e][1]
		}
		return em.Edges[e][0]
	}

	// Walk from v along e, chaining through degree-2 curve vertices.
	walk := func(v, e int) []int {
		var curve []int
		for {
			visited[e] = true
			curve = append(curve, e)
			v = otherEnd(e, v)
			if len(vertEdges[v]) != 2 {
				return curve
			}
			next := vertEdges[v][0]
			if next == e {
				next = vertEdges[v][1]
			}
			if visited[next] {
				return curve
			}
			e = next
		}
	}

	var curves [][]int
	// Open chains start at junctions and endpoints.
	for _, e := range nmEdges {
		if visited[e] {
			continue
		}
		for _, v := range em.Edges[e] {
			if len(vertEdges[v]) != 2 && !visited[e] {
				curves = append(curves, walk(v, e))
			}
		}
	}
	// Remaining edges lie on closed loops.
	for _, e := range nmEdges {
		if !visited[e] {
			curves = append(curves, walk(em.Edges[e][0], e))
		}
	}
	return curves
}
