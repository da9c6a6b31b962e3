// SPDX-License-Identifier: MIT
// Package mat4_test contains shared fixtures for the mat4 tests.

package mat4_test

import (
	"testing"

	"github.com/lgraubner/expo/mat4"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used by approximate comparisons.
const tol = 1e-9

// sample returns a non-singular matrix with rotation, non-uniform scale,
// translation and a perspective term, so no cell is trivially zero.
func sample() mat4.Mat4 {
	m := mat4.MultiplyAfter(mat4.Translate(1, 2, 3), mat4.RotateZ(0.3))
	m = mat4.MultiplyAfter(m, mat4.Scale(2, 3, 4))
	m[3] = 0.1
	m[7] = -0.05

	return m
}

// requireMatInDelta compares two matrices cell by cell.
func requireMatInDelta(t *testing.T, want, got mat4.Mat4, delta float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "cell %d\nwant:\n%s\ngot:\n%s", i, want, got)
	}
}
