// SPDX-License-Identifier: MIT
// Package decompose_test contains shared fixtures for decomposition tests.

package decompose_test

import (
	"testing"

	"github.com/lgraubner/expo/decompose"
	"github.com/lgraubner/expo/mat4"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for numeric components; degTol for angles.
const (
	tol    = 1e-9
	degTol = 1e-3
)

// sentinel returns a Result with every slot set to a recognizable value.
func sentinel() decompose.Result {
	return decompose.Result{
		Perspective:     mat4.Vec4{-7, -7, -7, -7},
		Quaternion:      [4]float64{-7, -7, -7, -7},
		Scale:           mat4.Vec3{-7, -7, -7},
		Skew:            mat4.Vec3{-7, -7, -7},
		Translation:     mat4.Vec3{-7, -7, -7},
		RotationDegrees: [3]float64{-7, -7, -7},
	}
}

// mustDecompose fails the test when m is not decomposable.
func mustDecompose(t *testing.T, m mat4.Mat4, opts ...decompose.Option) decompose.Result {
	t.Helper()
	res, err := decompose.Decompose(m, opts...)
	require.NoError(t, err)

	return res
}

// requireIdentityParts checks every component except translation against
// the decomposition of the identity.
func requireIdentityParts(t *testing.T, res decompose.Result) {
	t.Helper()
	requireSliceInDelta(t, []float64{0, 0, 0, 1}, res.Perspective[:], tol, "perspective")
	requireSliceInDelta(t, []float64{0, 0, 0, 1}, res.Quaternion[:], tol, "quaternion")
	requireSliceInDelta(t, []float64{1, 1, 1}, res.Scale[:], tol, "scale")
	requireSliceInDelta(t, []float64{0, 0, 0}, res.Skew[:], tol, "skew")
	requireSliceInDelta(t, []float64{0, 0, 0}, res.RotationDegrees[:], degTol, "rotation")
}

func requireSliceInDelta(t *testing.T, want, got []float64, delta float64, what string) {
	t.Helper()
	require.Len(t, got, len(want), what)
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "%s[%d]: want %v got %v", what, i, want, got)
	}
}
