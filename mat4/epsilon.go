// SPDX-License-Identifier: MIT

package mat4

import "math"

// Epsilon is the absolute tolerance below which a value counts as zero.
const Epsilon = 1e-5

// IsZero reports whether |d| < Epsilon.
// NaN is never zero: the comparison is false and NaN flows onwards.
func IsZero(d float64) bool {
	if math.IsNaN(d) {
		return false
	}

	return math.Abs(d) < Epsilon
}
