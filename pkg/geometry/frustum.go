package geometry

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultSides is the default circumferential resolution for frusta.
const DefaultSides = 16

// circleRing returns sides points on the circle of the given radius
// around center, in the plane spanned by u and v.
func circleRing(center v3.Vec, radius float64, u, v v3.Vec, sides int) []v3.Vec {
	pts := make([]v3.Vec, sides)
	for k := 0; k < sides; k++ {
		theta := 2 * math.Pi * float64(k) / float64(sides)
		offset := u.MulScalar(radius * math.Cos(theta)).Add(v.MulScalar(radius * math.Sin(theta)))
		pts[k] = center.Add(offset)
	}
	return pts
}

// FrustumMesh generates the triangle mesh for a single Segment: a ring of
// sides vertices around each endpoint, two side triangles per ring index,
// and optional end-cap fans. A zero radius suppresses its cap even when
// endCaps is set, since a degenerate cap would be zero-area. Zero-length
// segments are legal and fall back to a +Z frame.
func FrustumMesh(seg Segment, sides int, endCaps bool) (*Mesh, error) {
	if sides < 3 {
		return nil, fmt.Errorf("geometry: frustum needs sides >= 3, got %d", sides)
	}

	u, v, _ := Frame(seg.Vector())

	ringA := circleRing(seg.A, seg.RA, u, v, sides)
	ringB := circleRing(seg.B, seg.RB, u, v, sides)

	vertices := make([]v3.Vec, 0, 2*sides+2)
	vertices = append(vertices, ringA...)
	vertices = append(vertices, ringB...)

	faces := make([]Face, 0, 4*sides)

	// Side faces, two triangles per quad, consistently wound.
	for i := 0; i < sides; i++ {
		a0 := i
		a1 := (i + 1) % sides
		b0 := i + sides
		b1 := (i+1)%sides + sides
		faces = append(faces, Face{a0, b0, b1})
		faces = append(faces, Face{a0, b1, a1})
	}

	// Cap fans wind in opposite circumferential directions so both caps
	// face outward.
	if endCaps && seg.RA > 0 {
		ca := len(vertices)
		vertices = append(vertices, seg.A)
		for i := 0; i < sides; i++ {
			a0 := i
			a1 := (i + 1) % sides
			faces = append(faces, Face{ca, a1, a0})
		}
	}
	if endCaps && seg.RB > 0 {
		cb := len(vertices)
		vertices = append(vertices, seg.B)
		for i := 0; i < sides; i++ {
			b0 := i + sides
			b1 := (i+1)%sides + sides
			faces = append(faces, Face{cb, b0, b1})
		}
	}

	return &Mesh{Vertices: vertices, Faces: faces}, nil
}
