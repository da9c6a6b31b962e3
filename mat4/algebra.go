// SPDX-License-Identifier: MIT

package mat4

// MultiplyAfter multiplies b into the accumulated transform a.
//
// Implementation:
//   - Row i of the result is row i of b combined against the columns of a,
//     i.e. out = b·a in conventional notation.
//
// Notes:
//   - The argument order is load-bearing. MultiplyAfter(a, b) is NOT the
//     textbook Mul(a, b) = a·b; code ported from such an API must swap
//     operands. See the package documentation for a worked example.
//
// Complexity: O(1), 64 multiplications.
func MultiplyAfter(a, b Mat4) Mat4 {
	var out Mat4
	var (
		i, base        int     // row iterator, row offset
		b0, b1, b2, b3 float64 // current row of b
	)
	for i = 0; i < 4; i++ {
		base = i * 4
		b0, b1, b2, b3 = b[base], b[base+1], b[base+2], b[base+3]
		out[base] = b0*a[0] + b1*a[4] + b2*a[8] + b3*a[12]
		out[base+1] = b0*a[1] + b1*a[5] + b2*a[9] + b3*a[13]
		out[base+2] = b0*a[2] + b1*a[6] + b2*a[10] + b3*a[14]
		out[base+3] = b0*a[3] + b1*a[7] + b2*a[11] + b3*a[15]
	}

	return out
}

// Determinant returns the full 4×4 determinant using the closed-form
// 24-term cofactor expansion.
func Determinant(m Mat4) float64 {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	return m03*m12*m21*m30 - m02*m13*m21*m30 -
		m03*m11*m22*m30 + m01*m13*m22*m30 +
		m02*m11*m23*m30 - m01*m12*m23*m30 -
		m03*m12*m20*m31 + m02*m13*m20*m31 +
		m03*m10*m22*m31 - m00*m13*m22*m31 -
		m02*m10*m23*m31 + m00*m12*m23*m31 +
		m03*m11*m20*m32 - m01*m13*m20*m32 -
		m03*m10*m21*m32 + m00*m13*m21*m32 +
		m01*m10*m23*m32 - m00*m11*m23*m32 -
		m02*m11*m20*m33 + m01*m12*m20*m33 +
		m02*m10*m21*m33 - m00*m12*m21*m33 -
		m01*m10*m22*m33 + m00*m11*m22*m33
}

// Inverse returns the adjugate/determinant inverse of m.
//
// Behavior highlights:
//   - If |det(m)| < Epsilon, m is returned UNCHANGED. This passthrough is
//     not an inverse; it mirrors the behavior existing animation callers
//     rely on. Use InverseStrict to get ErrSingular instead.
func Inverse(m Mat4) Mat4 {
	inv, err := InverseStrict(m)
	if err != nil {
		return m
	}

	return inv
}

// InverseStrict is Inverse with an explicit failure: it returns ErrSingular
// when the determinant is within Epsilon of zero.
func InverseStrict(m Mat4) (Mat4, error) {
	det := Determinant(m)
	if IsZero(det) {
		return Mat4{}, ErrSingular
	}

	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	return Mat4{
		(m12*m23*m31 - m13*m22*m31 + m13*m21*m32 - m11*m23*m32 - m12*m21*m33 + m11*m22*m33) / det,
		(m03*m22*m31 - m02*m23*m31 - m03*m21*m32 + m01*m23*m32 + m02*m21*m33 - m01*m22*m33) / det,
		(m02*m13*m31 - m03*m12*m31 + m03*m11*m32 - m01*m13*m32 - m02*m11*m33 + m01*m12*m33) / det,
		(m03*m12*m21 - m02*m13*m21 - m03*m11*m22 + m01*m13*m22 + m02*m11*m23 - m01*m12*m23) / det,
		(m13*m22*m30 - m12*m23*m30 - m13*m20*m32 + m10*m23*m32 + m12*m20*m33 - m10*m22*m33) / det,
		(m02*m23*m30 - m03*m22*m30 + m03*m20*m32 - m00*m23*m32 - m02*m20*m33 + m00*m22*m33) / det,
		(m03*m12*m30 - m02*m13*m30 - m03*m10*m32 + m00*m13*m32 + m02*m10*m33 - m00*m12*m33) / det,
		(m02*m13*m20 - m03*m12*m20 + m03*m10*m22 - m00*m13*m22 - m02*m10*m23 + m00*m12*m23) / det,
		(m11*m23*m30 - m13*m21*m30 + m13*m20*m31 - m10*m23*m31 - m11*m20*m33 + m10*m21*m33) / det,
		(m03*m21*m30 - m01*m23*m30 - m03*m20*m31 + m00*m23*m31 + m01*m20*m33 - m00*m21*m33) / det,
		(m01*m13*m30 - m03*m11*m30 + m03*m10*m31 - m00*m13*m31 - m01*m10*m33 + m00*m11*m33) / det,
		(m03*m11*m20 - m01*m13*m20 - m03*m10*m21 + m00*m13*m21 + m01*m10*m23 - m00*m11*m23) / det,
		(m12*m21*m30 - m11*m22*m30 - m12*m20*m31 + m10*m22*m31 + m11*m20*m32 - m10*m21*m32) / det,
		(m01*m22*m30 - m02*m21*m30 + m02*m20*m31 - m00*m22*m31 - m01*m20*m32 + m00*m21*m32) / det,
		(m02*m11*m30 - m01*m12*m30 - m02*m10*m31 + m00*m12*m31 + m01*m10*m32 - m00*m11*m32) / det,
		(m01*m12*m20 - m02*m11*m20 + m02*m10*m21 - m00*m12*m21 - m01*m10*m22 + m00*m11*m22) / det,
	}, nil
}

// Transpose swaps rows and columns.
func Transpose(m Mat4) Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MultiplyVector computes the row vector v times m and writes it into out.
// out may alias v; v is read completely before out is written.
func MultiplyVector(v Vec4, m Mat4, out *Vec4) {
	vx, vy, vz, vw := v[0], v[1], v[2], v[3]
	out[0] = vx*m[0] + vy*m[4] + vz*m[8] + vw*m[12]
	out[1] = vx*m[1] + vy*m[5] + vz*m[9] + vw*m[13]
	out[2] = vx*m[2] + vy*m[6] + vz*m[10] + vw*m[14]
	out[3] = vx*m[3] + vy*m[7] + vz*m[11] + vw*m[15]
}
