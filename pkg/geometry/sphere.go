package geometry

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Default resolution for point-marker spheres. Deliberately coarse: the
// spheres mark point locations and are not meant for smooth shading.
const (
	DefaultStacks = 6
	DefaultSlices = 12
)

// SphereMesh generates a low-poly UV sphere around center: stacks-1
// latitude rings of slices vertices each (poles excluded), followed by the
// north and south pole vertices. Quads between adjacent rings become two
// triangles; the boundary rings fan to their poles. The winding follows
// the same pattern as the frustum side/cap faces.
func SphereMesh(center v3.Vec, radius float64, stacks, slices int) (*Mesh, error) {
	if stacks < 2 {
		return nil, fmt.Errorf("geometry: sphere needs stacks >= 2, got %d", stacks)
	}
	if slices < 3 {
		return nil, fmt.Errorf("geometry: sphere needs slices >= 3, got %d", slices)
	}

	vertices := make([]v3.Vec, 0, (stacks-1)*slices+2)

	// Latitude rings from just below the north pole down to just above
	// the south pole.
	for r := 1; r < stacks; r++ {
		phi := math.Pi * float64(r) / float64(stacks)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
		for s := 0; s < slices; s++ {
			theta := 2 * math.Pi * float64(s) / float64(slices)
			vertices = append(vertices, center.Add(v3.Vec{
				X: radius * sinPhi * math.Cos(theta),
				Y: radius * sinPhi * math.Sin(theta),
				Z: radius * cosPhi,
			}))
		}
	}
	north := len(vertices)
	vertices = append(vertices, center.Add(v3.Vec{Z: radius}))
	south := len(vertices)
	vertices = append(vertices, center.Add(v3.Vec{Z: -radius}))

	faces := make([]Face, 0, 2*(stacks-1)*slices)

	// Quads between adjacent rings; ring r occupies indices
	// [r*slices, (r+1)*slices).
	for r := 0; r < stacks-2; r++ {
		for s := 0; s < slices; s++ {
			a0 := r*slices + s
			a1 := r*slices + (s+1)%slices
			b0 := (r+1)*slices + s
			b1 := (r+1)*slices + (s+1)%slices
			faces = append(faces, Face{a0, b0, b1})
			faces = append(faces, Face{a0, b1, a1})
		}
	}

	// Pole fans, wound opposite ways like the frustum caps.
	for s := 0; s < slices; s++ {
		a0 := s
		a1 := (s + 1) % slices
		faces = append(faces, Face{north, a1, a0})
	}
	last := (stacks - 2) * slices
	for s := 0; s < slices; s++ {
		b0 := last + s
		b1 := last + (s+1)%slices
		faces = append(faces, Face{south, b0, b1})
	}

	return &Mesh{Vertices: vertices, Faces: faces}, nil
}
