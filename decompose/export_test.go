// SPDX-License-Identifier: MIT

package decompose

// White-box bridge for decompose_test: exposes the effective options
// without widening the production API. Keep OptionsSnapshot in sync with
// the Options fields.

// OptionsSnapshot is a read-only view of Options.
type OptionsSnapshot struct {
	DuplicateOrthogonalization bool
	RotationDegrees            bool
}

// GatherOptionsSnapshot applies opts over the defaults exactly as
// Decompose does and returns the result.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		DuplicateOrthogonalization: o.duplicateOrthogonalization,
		RotationDegrees:            o.rotationDegrees,
	}
}
