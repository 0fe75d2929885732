package winding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellGraphBipartite(t *testing.T) {
	// One patch separating two cells: trivially two-colorable.
	g := newCellGraph(2, [][2]int{{0, 1}})
	ok, cycle := g.bipartite()
	assert.True(t, ok)
	assert.Nil(t, cycle)

	// Two overlapping boxes: outside, A-only, both, B-only. Even
	// cycles only.
	g = newCellGraph(4, [][2]int{{0, 1}, {3, 2}, {1, 2}, {0, 3}})
	ok, _ = g.bipartite()
	assert.True(t, ok)
}

func TestCellGraphOddCycle(t *testing.T) {
	// Three cells in a triangle: an odd cycle, so no consistent
	// inside/outside alternation exists.
	g := newCellGraph(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	ok, cycle := g.bipartite()
	require.False(t, ok)
	require.NotEmpty(t, cycle)

	// The trace joins two tree paths at the conflicting edge, so its
	// endpoints share the BFS root.
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
}

func TestPropagateCellsTwoBoxes(t *testing.T) {
	// The two-box cell layout: cell 0 is the unbounded exterior,
	// 1 is inside A only, 2 inside both, 3 inside B only. Patches:
	// A shell {0,1}, the disk {3,2}, B inside A {1,2}, B outside A
	// {0,3}; labels 0,0,1,1.
	g := newCellGraph(4, [][2]int{{0, 1}, {3, 2}, {1, 2}, {0, 3}})
	w, err := propagateCells(g, 0, []int{0, 0, 1, 1}, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0}, w.Row(0))
	assert.Equal(t, []int{1, 0}, w.Row(1))
	assert.Equal(t, []int{1, 1}, w.Row(2))
	assert.Equal(t, []int{0, 1}, w.Row(3))
}

func TestPropagateCellsUnreachable(t *testing.T) {
	// Cell 2 has no incident patch.
	g := newCellGraph(3, [][2]int{{0, 1}})
	_, err := propagateCells(g, 0, []int{0}, 1)
	require.ErrorIs(t, err, ErrUnreachableCell)
}

func TestPropagateCellsRevisitConflict(t *testing.T) {
	// The odd triangle graph assigns cell 2 twice with different
	// values; the revisit check must catch it.
	g := newCellGraph(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	_, err := propagateCells(g, 0, []int{0, 0, 0}, 1)
	require.ErrorIs(t, err, ErrCellRevisit)
}
