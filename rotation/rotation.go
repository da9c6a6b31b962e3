// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"github.com/lgraubner/expo/mat4"
)

// Pole threshold for gimbal-lock detection, as a fraction of |q|².
const gimbalThreshold = 0.49999

// Pure Z-rotation detection: x and y quaternion parts within [0, planarLimit).
const planarLimit = 0.001

const radToDeg = 180 / math.Pi

// Quaternion is (x, y, z, w), w last.
type Quaternion [4]float64

// Euler holds XYZ angles in degrees: roll, pitch, yaw.
type Euler [3]float64

// RoundTo3Places rounds n to the nearest thousandth, halves rounding up
// (towards +Inf), matching the reference rounding of existing callers.
func RoundTo3Places(n float64) float64 {
	return math.Floor(n*1000+0.5) * 0.001
}

// FromBasis builds the quaternion of an orthonormal, right-handed basis
// given as rows.
//
// Implementation:
//   - Stage 1: trace-based magnitudes; each radicand is clamped with
//     max(x, 0) so negative rounding noise cannot produce NaN.
//   - Stage 2: sign of x, y, z from the antisymmetric off-diagonal pairs.
func FromBasis(row [3]mat4.Vec3) Quaternion {
	var q Quaternion
	q[0] = 0.5 * math.Sqrt(math.Max(1+row[0][0]-row[1][1]-row[2][2], 0))
	q[1] = 0.5 * math.Sqrt(math.Max(1-row[0][0]+row[1][1]-row[2][2], 0))
	q[2] = 0.5 * math.Sqrt(math.Max(1-row[0][0]-row[1][1]+row[2][2], 0))
	q[3] = 0.5 * math.Sqrt(math.Max(1+row[0][0]+row[1][1]+row[2][2], 0))

	if row[2][1] > row[1][2] {
		q[0] = -q[0]
	}
	if row[0][2] > row[2][0] {
		q[1] = -q[1]
	}
	if row[1][0] > row[0][1] {
		q[2] = -q[2]
	}

	return q
}

// IsPlanar reports whether q is a pure rotation about Z, i.e. both the x
// and y parts lie in [0, 0.001).
func IsPlanar(q Quaternion) bool {
	return q[0] >= 0 && q[0] < planarLimit &&
		q[1] >= 0 && q[1] < planarLimit
}

// PlanarDegrees returns the Z rotation of a basis whose first row is
// (cos θ, sin θ, ·), as (0, 0, θ°) rounded to three places.
func PlanarDegrees(row0 mat4.Vec3) Euler {
	return Euler{0, 0, RoundTo3Places(math.Atan2(row0[1], row0[0]) * radToDeg)}
}

// ToDegreesXYZ converts q into XYZ Euler degrees.
//
// Behavior highlights:
//   - test = x*y + z*w above 0.49999·|q|² is the north pole: (0, 2·atan2(x,w)°, 90).
//   - below -0.49999·|q|² is the south pole: (0, -2·atan2(x,w)°, -90).
//   - otherwise the closed-form atan2/asin angles, each rounded to 3 places.
func ToDegreesXYZ(q Quaternion) Euler {
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	qw2, qx2, qy2, qz2 := qw*qw, qx*qx, qy*qy, qz*qz
	test := qx*qy + qz*qw
	unit := qw2 + qx2 + qy2 + qz2

	if test > gimbalThreshold*unit {
		return Euler{0, 2 * math.Atan2(qx, qw) * radToDeg, 90}
	}
	if test < -gimbalThreshold*unit {
		return Euler{0, -2 * math.Atan2(qx, qw) * radToDeg, -90}
	}

	return Euler{
		RoundTo3Places(math.Atan2(2*qx*qw-2*qy*qz, 1-2*qx2-2*qz2) * radToDeg),
		RoundTo3Places(math.Atan2(2*qy*qw-2*qx*qz, 1-2*qy2-2*qz2) * radToDeg),
		RoundTo3Places(math.Asin(2*qx*qy+2*qz*qw) * radToDeg),
	}
}
