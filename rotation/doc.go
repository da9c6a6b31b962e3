// SPDX-License-Identifier: MIT

// Package rotation extracts rotations from an orthonormal basis.
//
// Quaternions are stored as (x, y, z, w) with w LAST. Euler angles are
// XYZ degrees: index 0 is roll (bank, X axis), index 1 is pitch
// (elevation, Y axis), index 2 is yaw (heading, Z axis).
//
// Angles leaving this package are rounded to the nearest thousandth of a
// degree to absorb floating-point noise from quaternion construction; the
// gimbal-lock branches are the exception and are returned unrounded.
package rotation
