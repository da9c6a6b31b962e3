// SPDX-License-Identifier: MIT

package mat4

import "math"

// Vec3 is a 3-component vector. Decomposition uses it for the basis rows
// of the upper-left 3×3 block.
type Vec3 [3]float64

// Length returns the Euclidean norm of a.
func Length(a Vec3) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

// Normalize scales v by 1/norm.
// When norm is within Epsilon of zero the norm is recomputed from v itself,
// so a stale or zero norm never divides by (near) zero.
func Normalize(v Vec3, norm float64) Vec3 {
	if IsZero(norm) {
		norm = Length(v)
	}
	im := 1 / norm

	return Vec3{v[0] * im, v[1] * im, v[2] * im}
}

// Dot returns a·b.
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Combine returns scaleA*a + scaleB*b elementwise.
func Combine(a, b Vec3, scaleA, scaleB float64) Vec3 {
	return Vec3{
		scaleA*a[0] + scaleB*b[0],
		scaleA*a[1] + scaleB*b[1],
		scaleA*a[2] + scaleB*b[2],
	}
}

// Cross returns a×b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
