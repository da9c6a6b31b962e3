// SPDX-License-Identifier: MIT

package mat4

import "errors"

// Every message is prefixed with "mat4: ..." for consistent grepping.
// Callers match with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX) only
// at outer boundaries.
var (
	// ErrBadLength is returned when a slice handed to FromSlice does not hold
	// exactly 16 values.
	ErrBadLength = errors.New("mat4: matrix must hold exactly 16 values")

	// ErrSingular is returned by InverseStrict when the determinant is within
	// Epsilon of zero.
	ErrSingular = errors.New("mat4: singular matrix")
)
