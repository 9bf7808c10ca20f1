package geometry

import v3 "github.com/deadsy/sdfx/vec/v3"

// Face is one triangle, indexing into a mesh's vertex list.
type Face [3]int

// Mesh is a triangle mesh. Builders return a complete, internally
// consistent mesh or fail outright; a Mesh is never mutated after return.
type Mesh struct {
	Vertices []v3.Vec
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Arrays returns the mesh as flat parallel arrays for an external
// renderer: coordinate arrays x, y, z (one entry per vertex) and index
// arrays i, j, k (one entry per face, each in [0, VertexCount)). This is
// a pure projection of the stored mesh.
func (m *Mesh) Arrays() (x, y, z []float64, i, j, k []int) {
	x = make([]float64, len(m.Vertices))
	y = make([]float64, len(m.Vertices))
	z = make([]float64, len(m.Vertices))
	for n, v := range m.Vertices {
		x[n] = v.X
		y[n] = v.Y
		z[n] = v.Z
	}
	i = make([]int, len(m.Faces))
	j = make([]int, len(m.Faces))
	k = make([]int, len(m.Faces))
	for n, f := range m.Faces {
		i[n] = f[0]
		j[n] = f[1]
		k[n] = f[2]
	}
	return x, y, z, i, j, k
}
