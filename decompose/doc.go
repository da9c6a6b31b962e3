// SPDX-License-Identifier: MIT

// Package decompose recovers the independent components of a 4×4 transform.
//
// What & Why:
//
//	Animation and layout engines compose translate, scale, rotate, skew and
//	perspective operations into a single row-major matrix (see package
//	mat4). To interpolate between two such matrices they need the parts
//	back. Decompose returns them as a Result:
//
//	  - Perspective     (x, y, z, w)
//	  - Translation     (x, y, z)
//	  - Scale           (x, y, z), negative when the basis is reflected
//	  - Skew            (xy, xz, yz) shear factors
//	  - Quaternion      (x, y, z, w), w LAST
//	  - RotationDegrees XYZ Euler degrees, rounded to 0.001°
//
// Failure:
//
//	A matrix is not decomposable when its homogeneous element (index 15)
//	is within mat4.Epsilon of zero (ErrHomogeneousZero), or when the
//	perspective matrix built from it is singular (ErrSingularPerspective).
//	Into leaves the target Result untouched in both cases.
//
// Concurrency:
//
//	Decompose is pure and safe for concurrent use. Into writes into a
//	caller-owned Result; one Result must not be shared by concurrent calls.
//
// Complexity:
//
//	O(1) time and space; no heap allocation on the Into path.
package decompose
