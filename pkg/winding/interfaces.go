package winding

import (
	"github.com/chazu/winding/pkg/geom"
	"github.com/chazu/winding/pkg/mesh"
	"github.com/chazu/winding/pkg/topo"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// The geometric collaborators are consumed behind interfaces so that
// callers can substitute exact predicates (or test stubs) without
// touching the propagation logic. The defaults come from pkg/geom.

// FaceOrderer orders the faces incident to an edge by angle around it.
// See geom.OrderFacesAroundEdge for the contract.
type FaceOrderer interface {
	OrderFacesAroundEdge(vertices []v3.Vec, faces [][3]int, s, d int, signedFaces []int) []int
}

// OuterFaceFinder locates the globally outermost face and reports
// whether its orientation points away from the unbounded exterior.
type OuterFaceFinder interface {
	OuterFace(vertices []v3.Vec, faces [][3]int) (fid int, flipped bool)
}

// ContainmentQuerier answers nearest-face queries: for each query
// point, the closest face and whether the point is on its outside.
type ContainmentQuerier interface {
	ClosestFaces(vertices []v3.Vec, faces [][3]int, queries []v3.Vec) (fids []int, outside []bool)
}

// CellDecomposer partitions the volume of a connected arrangement into
// cells and maps each patch to its (front, back) cell pair. Cell
// decomposition is an external concern; there is no default
// implementation.
type CellDecomposer interface {
	Cells(m *mesh.Mesh, em *topo.EdgeMap, numPatches int, facePatch []int) (numCells int, patchCells [][2]int, err error)
}

// MeshWriter dumps a mesh for offline inspection. Only invoked on
// inconsistent arrangements, and only when configured.
type MeshWriter interface {
	WriteMesh(path string, m *mesh.Mesh) error
}

type geomOrderer struct{}

func (geomOrderer) OrderFacesAroundEdge(vertices []v3.Vec, faces [][3]int, s, d int, signedFaces []int) []int {
	return geom.OrderFacesAroundEdge(vertices, faces, s, d, signedFaces)
}

type geomOuter struct{}

func (geomOuter) OuterFace(vertices []v3.Vec, faces [][3]int) (int, bool) {
	return geom.OuterFace(vertices, faces)
}

type geomClosest struct{}

func (geomClosest) ClosestFaces(vertices []v3.Vec, faces [][3]int, queries []v3.Vec) ([]int, []bool) {
	return geom.ClosestFaces(vertices, faces, queries)
}

type options struct {
	orderer     FaceOrderer
	outer       OuterFaceFinder
	closest     ContainmentQuerier
	debugWriter MeshWriter
	debugPath   string
}

func defaultOptions() options {
	return options{
		orderer: geomOrderer{},
		outer:   geomOuter{},
		closest: geomClosest{},
	}
}

// Option customizes a propagation run.
type Option func(*options)

// WithOrderer substitutes the angular face ordering predicate.
func WithOrderer(o FaceOrderer) Option {
	return func(opts *options) { opts.orderer = o }
}

// WithOuterFaceFinder substitutes the outer face predicate.
func WithOuterFaceFinder(o OuterFaceFinder) Option {
	return func(opts *options) { opts.outer = o }
}

// WithContainmentQuerier substitutes the nearest-face query used by
// the nesting corrector.
func WithContainmentQuerier(c ContainmentQuerier) Option {
	return func(opts *options) { opts.closest = c }
}

// WithDebugWriter dumps any inconsistent component to path using w.
// The component index is appended to the path's stem.
func WithDebugWriter(w MeshWriter, path string) Option {
	return func(opts *options) {
		opts.debugWriter = w
		opts.debugPath = path
	}
}
