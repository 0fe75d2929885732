package winding

import (
	"errors"
	"fmt"
)

// ErrUnreachableCell means the cell graph is disconnected, which a
// valid cell decomposition of a connected arrangement cannot be.
var ErrUnreachableCell = errors.New("winding: cell unreachable from the unbounded cell")

// ErrCellRevisit means BFS reached an already-assigned cell with a
// conflicting winding vector. On a bipartite graph the traversal
// cannot produce this, so it indicates an upstream bug or invalid
// input that escaped validation; it is surfaced as a hard error
// rather than silently corrected.
var ErrCellRevisit = errors.New("winding: conflicting winding vector on cell revisit")

// propagateCells assigns one winding number per label to every cell by
// BFS from the unbounded cell. Crossing a patch toward its front cell
// decrements the patch's label, toward its back cell increments it;
// all other labels carry over unchanged.
func propagateCells(g *cellGraph, infinityCell int, patchLabels []int, numLabels int) (Table, error) {
	w := NewTable(len(g.adj), numLabels)
	w.ZeroRow(infinityCell)

	queue := []int{infinityCell}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[curr] {
			label := patchLabels[e.patch]
			inc := 1
			if e.toFront {
				inc = -1
			}
			if !w.RowAssigned(e.to) {
				for k := 0; k < numLabels; k++ {
					x := w.At(curr, k)
					if k == label {
						x += inc
					}
					w.Set(e.to, k, x)
				}
				queue = append(queue, e.to)
				continue
			}
			for k := 0; k < numLabels; k++ {
				want := w.At(curr, k)
				if k == label {
					want += inc
				}
				if got := w.At(e.to, k); got != want {
					return w, fmt.Errorf("%w: cell %d label %d has %d, expected %d crossing patch %d from cell %d",
						ErrCellRevisit, e.to, k, got, want, e.patch, curr)
				}
			}
		}
	}

	for c := 0; c < len(g.adj); c++ {
		if !w.RowAssigned(c) {
			return w, fmt.Errorf("%w: cell %d of %d", ErrUnreachableCell, c, len(g.adj))
		}
	}
	return w, nil
}

// cellsToFaces reads the per-face winding table off the per-cell one:
// the front half of each label comes from the face's front cell, the
// back half from its back cell.
func cellsToFaces(cellW Table, patchCells [][2]int, facePatch []int, numLabels int) Table {
	w := NewTable(len(facePatch), 2*numLabels)
	for fi, p := range facePatch {
		front, back := patchCells[p][0], patchCells[p][1]
		for k := 0; k < numLabels; k++ {
			w.Set(fi, 2*k, cellW.At(front, k))
			w.Set(fi, 2*k+1, cellW.At(back, k))
		}
	}
	return w
}
