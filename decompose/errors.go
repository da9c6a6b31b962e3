// SPDX-License-Identifier: MIT

package decompose

import "errors"

var (
	// ErrHomogeneousZero: the homogeneous element T[15] is within Epsilon
	// of zero, so the matrix cannot be normalized.
	ErrHomogeneousZero = errors.New("decompose: homogeneous coordinate is zero")

	// ErrSingularPerspective: the normalized perspective matrix (translation
	// column zeroed) has a determinant within Epsilon of zero.
	ErrSingularPerspective = errors.New("decompose: perspective matrix is singular")
)

// Status classifies the outcome of a decomposition.
type Status int

const (
	// StatusOK means the Result was fully populated.
	StatusOK Status = iota
	// StatusSingularW corresponds to ErrHomogeneousZero.
	StatusSingularW
	// StatusSingularPerspective corresponds to ErrSingularPerspective.
	StatusSingularPerspective
	// StatusUnknown is any other non-nil error.
	StatusUnknown
)

// String returns a stable lower-case label for reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSingularW:
		return "singular-w"
	case StatusSingularPerspective:
		return "singular-perspective"
	default:
		return "unknown"
	}
}

// Reason maps an error returned by this package to its Status.
// Wrapped sentinels are recognized through errors.Is.
func Reason(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrHomogeneousZero):
		return StatusSingularW
	case errors.Is(err, ErrSingularPerspective):
		return StatusSingularPerspective
	default:
		return StatusUnknown
	}
}
