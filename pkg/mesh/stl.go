package mesh

import "github.com/deadsy/sdfx/render"

// WriteSTL writes the mesh to path in STL format. It exists for debug
// dumps of inconsistent arrangements and is never needed for
// correctness.
func WriteSTL(path string, m *Mesh) error {
	return render.SaveSTL(path, Triangles(m))
}

// STLWriter writes debug meshes as STL files. It satisfies the
// winding.MeshWriter interface.
type STLWriter struct{}

// WriteMesh writes m to path as STL.
func (STLWriter) WriteMesh(path string, m *Mesh) error {
	return WriteSTL(path, m)
}
