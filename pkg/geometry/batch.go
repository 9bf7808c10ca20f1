package geometry

import v3 "github.com/deadsy/sdfx/vec/v3"

// appendOffset appends src to dst, shifting every face index by the
// current vertex count of dst before the vertices are appended.
func appendOffset(dst, src *Mesh) {
	offset := len(dst.Vertices)
	dst.Vertices = append(dst.Vertices, src.Vertices...)
	for _, f := range src.Faces {
		dst.Faces = append(dst.Faces, Face{f[0] + offset, f[1] + offset, f[2] + offset})
	}
}

// BatchFrusta meshes each segment in order and concatenates the results
// into a single index space. Zero segments yields an empty mesh.
func BatchFrusta(segments []Segment, sides int, endCaps bool) (*Mesh, error) {
	combined := &Mesh{}
	for _, seg := range segments {
		m, err := FrustumMesh(seg, sides, endCaps)
		if err != nil {
			return nil, err
		}
		appendOffset(combined, m)
	}
	return combined, nil
}

// BatchSpheres meshes a sphere of the given radius at each center in order
// and concatenates the results into a single index space.
func BatchSpheres(centers []v3.Vec, radius float64, stacks, slices int) (*Mesh, error) {
	combined := &Mesh{}
	for _, c := range centers {
		m, err := SphereMesh(c, radius, stacks, slices)
		if err != nil {
			return nil, err
		}
		appendOffset(combined, m)
	}
	return combined, nil
}
