// SPDX-License-Identifier: MIT

package decompose

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultDuplicateOrthogonalization repeats the row1-against-row0
	// orthogonalization once more. The repeated projection leaves the basis,
	// scale and rotation unchanged up to rounding, but it re-measures the XY
	// shear against an already orthogonal row, so Skew[0] comes out near
	// zero. It is on by default so output matches existing consumers.
	DefaultDuplicateOrthogonalization = true

	// DefaultRotationDegrees enables the Euler conversion of the final step.
	DefaultRotationDegrees = true
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	duplicateOrthogonalization bool
	rotationDegrees            bool
}

// WithDuplicateOrthogonalization toggles the repeated XY-shear pass.
// Disabling it keeps the measured XY shear in Skew[0]; every other
// component moves by at most floating-point rounding.
func WithDuplicateOrthogonalization(enabled bool) Option {
	return func(o *Options) {
		o.duplicateOrthogonalization = enabled
	}
}

// WithRotationDegrees toggles the Euler conversion. When disabled,
// RotationDegrees is left as it was and only the quaternion is produced.
func WithRotationDegrees(enabled bool) Option {
	return func(o *Options) {
		o.rotationDegrees = enabled
	}
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		duplicateOrthogonalization: DefaultDuplicateOrthogonalization,
		rotationDegrees:            DefaultRotationDegrees,
	}
}

// gatherOptions applies opts in order over the defaults. nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
