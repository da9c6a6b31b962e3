// SPDX-License-Identifier: MIT

package mat4

import (
	"fmt"
	"math"
)

// Size is the number of elements in a Mat4.
const Size = 16

// Index constants for the cells touched by the constructors.
const (
	idxTranslateX = 12
	idxTranslateY = 13
	idxTranslateZ = 14
	idxW          = 15
	idxScaleX     = 0
	idxScaleY     = 5
	idxScaleZ     = 10
)

// Mat4 is a 4×4 homogeneous transform in row-major order.
// Element (row i, column j) lives at index i*4+j.
type Mat4 [Size]float64

// Vec4 is a homogeneous 4-component vector (x, y, z, w).
type Vec4 [4]float64

// Identity returns the canonical identity matrix.
// Complexity: O(1).
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns the identity with x, y, z written to indices 12, 13, 14.
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[idxTranslateX] = x
	m[idxTranslateY] = y
	m[idxTranslateZ] = z

	return m
}

// Scale returns the identity with x, y, z on the diagonal (indices 0, 5, 10).
func Scale(x, y, z float64) Mat4 {
	m := Identity()
	m[idxScaleX] = x
	m[idxScaleY] = y
	m[idxScaleZ] = z

	return m
}

// RotateZ returns a rotation about the Z axis by radians.
// The upper-left block is [cos, sin; -sin, cos]: cell 1 holds +sin and
// cell 4 holds -sin.
func RotateZ(radians float64) Mat4 {
	sin, cos := math.Sincos(radians)
	m := Identity()
	m[0] = cos
	m[1] = sin
	m[4] = -sin
	m[5] = cos

	return m
}

// FromSlice copies a 16-element row-major slice into a Mat4.
// Returns ErrBadLength (wrapped with the observed length) for any other size.
func FromSlice(values []float64) (Mat4, error) {
	var m Mat4
	if len(values) != Size {
		return m, fmt.Errorf("FromSlice: got %d values: %w", len(values), ErrBadLength)
	}
	copy(m[:], values)

	return m, nil
}

// Slice returns the 16 values as a freshly allocated slice.
func (m Mat4) Slice() []float64 {
	out := make([]float64, Size)
	copy(out, m[:])

	return out
}

// At returns element (row, col). Indices must be in [0,4); At panics
// otherwise, like any array access.
func (m Mat4) At(row, col int) float64 {
	return m[row*4+col]
}

// Rows returns the matrix as a 4×4 array for row/column indexing.
func (m Mat4) Rows() [4][4]float64 {
	var out [4][4]float64
	var i, j int // loop iterators
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[i][j] = m[i*4+j]
		}
	}

	return out
}

// W returns the homogeneous scale element (index 15).
func (m Mat4) W() float64 {
	return m[idxW]
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Mat4) String() string {
	var s string
	var i int
	for i = 0; i < 4; i++ {
		s += fmt.Sprintf("[%g, %g, %g, %g]\n", m[i*4], m[i*4+1], m[i*4+2], m[i*4+3])
	}

	return s
}
