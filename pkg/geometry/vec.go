// Package geometry converts graph edges and point sets into triangle
// meshes: tapered frustum solids along edges, low-resolution spheres at
// points, and batched combinations of both for a renderer.
package geometry

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// unitEps is the norm below which a vector is treated as zero.
const unitEps = 1e-12

// Unit returns a/|a|, or the zero vector when |a| is below unitEps.
// Degenerate inputs must not produce NaN; callers rely on the zero vector
// to detect and handle zero-length segments.
func Unit(a v3.Vec) v3.Vec {
	n := a.Length()
	if n < unitEps {
		return v3.Vec{}
	}
	return a.DivScalar(n)
}

// Frame returns a right-handed orthonormal basis (u, v, w) with w the unit
// direction of axis. A (near-)zero axis defaults w to +Z rather than
// failing, so degenerate-length frusta still get a valid frame. The
// temporary reference axis is X unless its component along w exceeds 0.9
// in magnitude, in which case Y is used; if the first cross product is
// itself degenerate the other candidate is tried.
func Frame(axis v3.Vec) (u, v, w v3.Vec) {
	w = Unit(axis)
	if w == (v3.Vec{}) {
		w = v3.Vec{Z: 1}
	}

	tmp := v3.Vec{X: 1}
	if w.X > 0.9 || w.X < -0.9 {
		tmp = v3.Vec{Y: 1}
	}
	u = Unit(tmp.Cross(w))
	if u == (v3.Vec{}) {
		// tmp was effectively parallel to w; the other axis cannot be.
		u = Unit(v3.Vec{Y: 1}.Cross(w))
	}
	v = w.Cross(u)
	return u, v, w
}
