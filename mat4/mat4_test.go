// Package mat4_test contains unit tests for the Mat4 constructors.
package mat4_test

import (
	"math"
	"testing"

	"github.com/lgraubner/expo/mat4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentityLayout pins the row-major layout: ones on 0, 5, 10, 15.
func TestIdentityLayout(t *testing.T) {
	m := mat4.Identity()
	for i, v := range m {
		if i == 0 || i == 5 || i == 10 || i == 15 {
			require.Equal(t, 1.0, v, "diagonal cell %d", i)
			continue
		}
		require.Equal(t, 0.0, v, "off-diagonal cell %d", i)
	}
}

// TestTranslateCells verifies that translation lands in the last row.
func TestTranslateCells(t *testing.T) {
	m := mat4.Translate(2, -3, 5)
	want := mat4.Identity()
	want[12], want[13], want[14] = 2, -3, 5
	require.Equal(t, want, m)
	assert.Equal(t, [4]float64{2, -3, 5, 1}, m.Rows()[3])
}

// TestScaleCells verifies the diagonal cells.
func TestScaleCells(t *testing.T) {
	m := mat4.Scale(2, 3, 4)
	require.Equal(t, 2.0, m.At(0, 0))
	require.Equal(t, 3.0, m.At(1, 1))
	require.Equal(t, 4.0, m.At(2, 2))
	require.Equal(t, 1.0, m.W())
}

// TestRotateZSigns pins cell 1 = +sin and cell 4 = -sin.
func TestRotateZSigns(t *testing.T) {
	m := mat4.RotateZ(math.Pi / 6)
	require.InDelta(t, math.Sqrt(3)/2, m[0], tol)
	require.InDelta(t, 0.5, m[1], tol)
	require.InDelta(t, -0.5, m[4], tol)
	require.InDelta(t, math.Sqrt(3)/2, m[5], tol)
	require.Equal(t, 1.0, m[10])
	require.Equal(t, 1.0, m[15])
}

func TestFromSlice(t *testing.T) {
	values := mat4.Translate(7, 8, 9).Slice()
	m, err := mat4.FromSlice(values)
	require.NoError(t, err)
	require.Equal(t, mat4.Translate(7, 8, 9), m)

	// the returned slice is a copy
	values[12] = 100
	require.Equal(t, 7.0, m[12])

	for _, n := range []int{0, 15, 17} {
		_, err = mat4.FromSlice(make([]float64, n))
		require.ErrorIs(t, err, mat4.ErrBadLength, "len=%d", n)
	}
}

func TestIsZero(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want bool
	}{
		{"zero", 0, true},
		{"tiny positive", 1e-6, true},
		{"tiny negative", -1e-6, true},
		{"epsilon itself", mat4.Epsilon, false},
		{"one", 1, false},
		{"NaN", math.NaN(), false},
		{"+Inf", math.Inf(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, mat4.IsZero(tc.in))
		})
	}
}

// TestStringOutput checks the one-row-per-line format.
func TestStringOutput(t *testing.T) {
	want := "[1, 0, 0, 0]\n[0, 1, 0, 0]\n[0, 0, 1, 0]\n[4, 5, 6, 1]\n"
	require.Equal(t, want, mat4.Translate(4, 5, 6).String())
}
