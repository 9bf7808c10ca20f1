package geometry

import v3 "github.com/deadsy/sdfx/vec/v3"

// Segment is one oriented frustum primitive: a tapered cylinder between
// endpoints A and B with radii RA and RB. Pure value type; rescaling
// produces a new Segment.
type Segment struct {
	A, B   v3.Vec
	RA, RB float64
}

// Vector returns B - A.
func (s Segment) Vector() v3.Vec {
	return s.B.Sub(s.A)
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.Vector().Length()
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() v3.Vec {
	return s.A.Add(s.B).MulScalar(0.5)
}

// scaled returns a copy with both radii multiplied by factor. Endpoint
// positions are unchanged.
func (s Segment) scaled(factor float64) Segment {
	return Segment{A: s.A, B: s.B, RA: s.RA * factor, RB: s.RB * factor}
}
