// SPDX-License-Identifier: MIT

package decompose

import (
	"github.com/lgraubner/expo/mat4"
	"github.com/lgraubner/expo/rotation"
)

// Result is the decomposition aggregate.
// On failure Into never writes it, so a Result keeps whatever it held.
type Result struct {
	Perspective     mat4.Vec4           // x, y, z, w perspective terms
	Quaternion      rotation.Quaternion // x, y, z, w (w last)
	Scale           mat4.Vec3           // may be negative on reflection
	Skew            mat4.Vec3           // xy, xz, yz
	Translation     mat4.Vec3           // x, y, z
	RotationDegrees rotation.Euler      // roll X, pitch Y, yaw Z
}

// Reset zeroes every component.
func (r *Result) Reset() {
	*r = Result{}
}
