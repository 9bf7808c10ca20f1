// Package export writes generated meshes to disk using the sdfx render
// pipeline.
package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/jmrfox/swcviz/pkg/geometry"
)

// Triangles converts a mesh to sdfx triangles. Face indices are valid by
// construction in this module's builders; out-of-range indices are an
// error rather than being skipped.
func Triangles(m *geometry.Mesh) ([]*sdf.Triangle3, error) {
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for _, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= m.VertexCount() {
				return nil, fmt.Errorf("export: face index %d out of range [0, %d)", idx, m.VertexCount())
			}
		}
		t := sdf.Triangle3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
		tris = append(tris, &t)
	}
	return tris, nil
}

// SaveSTL writes the mesh to path as an STL file.
func SaveSTL(path string, m *geometry.Mesh) error {
	tris, err := Triangles(m)
	if err != nil {
		return err
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}
