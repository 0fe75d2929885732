package winding

// cellEdge is one side of a patch in the cell adjacency multigraph:
// crossing patch from the current cell reaches to; toFront is true
// when to is the patch's front cell.
type cellEdge struct {
	to      int
	toFront bool
	patch   int
}

// cellGraph is the undirected cell adjacency multigraph of one
// connected arrangement. Nodes are cells, edges are patches. The same
// adjacency serves both the bipartite validation and the cell-wise
// propagation.
type cellGraph struct {
	adj [][]cellEdge
}

// newCellGraph builds the adjacency from the per-patch (front, back)
// cell pairs supplied by the cell decomposition.
func newCellGraph(numCells int, patchCells [][2]int) *cellGraph {
	g := &cellGraph{adj: make([][]cellEdge, numCells)}
	for p, fb := range patchCells {
		front, back := fb[0], fb[1]
		g.adj[front] = append(g.adj[front], cellEdge{to: back, toFront: false, patch: p})
		g.adj[back] = append(g.adj[back], cellEdge{to: front, toFront: true, patch: p})
	}
	return g
}

// bipartite two-colors the cell graph. Crossing any patch must
// alternate colors; reaching an already-colored cell with the wrong
// color exposes an odd cycle, which means the arrangement cannot
// bound volumes consistently. On failure the traced cycle (the two
// BFS-tree paths joined at the conflict) is returned for diagnostics.
func (g *cellGraph) bipartite() (bool, []int) {
	n := len(g.adj)
	color := make([]int, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	tracePath := func(c int) []int {
		path := []int{c}
		for parent[path[len(path)-1]] != path[len(path)-1] {
			path = append(path, parent[path[len(path)-1]])
		}
		return path
	}

	var queue []int
	for seed := 0; seed < n; seed++ {
		if color[seed] != 0 {
			continue
		}
		color[seed] = 1
		parent[seed] = seed
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			for _, e := range g.adj[curr] {
				switch color[e.to] {
				case 0:
					color[e.to] = -color[curr]
					parent[e.to] = curr
					queue = append(queue, e.to)
				case color[curr]:
					// Odd cycle: join the path up from curr (reversed)
					// with the path up from the conflicting neighbor.
					path := tracePath(curr)
					for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
						path[i], path[j] = path[j], path[i]
					}
					return false, append(path, tracePath(e.to)...)
				}
			}
		}
	}
	return true, nil
}
