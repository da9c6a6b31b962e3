// SPDX-License-Identifier: MIT

package decompose

import (
	"github.com/lgraubner/expo/mat4"
	"github.com/lgraubner/expo/rotation"
)

// Decompose splits m into its components and returns them in a new Result.
// On failure the returned Result is zero and err is ErrHomogeneousZero or
// ErrSingularPerspective.
func Decompose(m mat4.Mat4, opts ...Option) (Result, error) {
	var res Result
	if err := Into(m, &res, opts...); err != nil {
		return Result{}, err
	}

	return res, nil
}

// Into decomposes m and writes the components into res.
//
// Implementation:
//   - Stage 1 (Validate): reject m[15] ≈ 0; normalize by m[15]; reject a
//     singular perspective matrix. Nothing is written before both checks pass.
//   - Stage 2 (Perspective): solve for the perspective vector when the
//     fourth column carries any non-zero term, else (0, 0, 0, 1).
//   - Stage 3 (Translation): the fourth row.
//   - Stage 4 (Scale & Skew): Gram-Schmidt over the basis rows in a fixed
//     order; the order decides which shear lands on which axis pair.
//   - Stage 5 (Reflection): negate scale and rows when the basis is left-handed.
//   - Stage 6 (Rotation): quaternion from the basis, then Euler degrees,
//     with pure Z rotations handled by atan2 of the first row.
//
// Returns:
//   - nil on success; ErrHomogeneousZero or ErrSingularPerspective otherwise.
//     res is untouched on error.
//
// Complexity: O(1).
func Into(m mat4.Mat4, res *Result, opts ...Option) error {
	o := gatherOptions(opts...)

	// Stage 1: normalize and validate.
	w := m.W()
	if mat4.IsZero(w) {
		return ErrHomogeneousZero
	}
	var (
		norm        mat4.Mat4 // m / m[15]
		perspective mat4.Mat4 // norm with column 3 zeroed, [15] = 1
		i, j        int       // loop iterators
	)
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			v := m[i*4+j] / w
			norm[i*4+j] = v
			if j != 3 {
				perspective[i*4+j] = v
			}
		}
	}
	perspective[15] = 1

	if mat4.IsZero(mat4.Determinant(perspective)) {
		return ErrSingularPerspective
	}
	rows := norm.Rows()

	// Stage 2: isolate perspective.
	if !mat4.IsZero(rows[0][3]) || !mat4.IsZero(rows[1][3]) || !mat4.IsZero(rows[2][3]) {
		rhs := mat4.Vec4{rows[0][3], rows[1][3], rows[2][3], rows[3][3]}
		solver := mat4.Transpose(mat4.Inverse(perspective))
		mat4.MultiplyVector(rhs, solver, &res.Perspective)
	} else {
		res.Perspective = mat4.Vec4{0, 0, 0, 1}
	}

	// Stage 3: translation.
	res.Translation = mat4.Vec3{rows[3][0], rows[3][1], rows[3][2]}

	// Stage 4: scale and shear.
	var row [3]mat4.Vec3
	for i = 0; i < 3; i++ {
		row[i] = mat4.Vec3{rows[i][0], rows[i][1], rows[i][2]}
	}

	res.Scale[0] = mat4.Length(row[0])
	row[0] = mat4.Normalize(row[0], res.Scale[0])

	// XY shear; make row 1 orthogonal to row 0. The repeated pass measures
	// the shear left after the first one, so Skew[0] ends near zero.
	res.Skew[0] = mat4.Dot(row[0], row[1])
	row[1] = mat4.Combine(row[1], row[0], 1, -res.Skew[0])
	if o.duplicateOrthogonalization {
		res.Skew[0] = mat4.Dot(row[0], row[1])
		row[1] = mat4.Combine(row[1], row[0], 1, -res.Skew[0])
	}

	res.Scale[1] = mat4.Length(row[1])
	row[1] = mat4.Normalize(row[1], res.Scale[1])
	res.Skew[0] /= res.Scale[1]

	// XZ and YZ shears; orthogonalize row 2.
	res.Skew[1] = mat4.Dot(row[0], row[2])
	row[2] = mat4.Combine(row[2], row[0], 1, -res.Skew[1])
	res.Skew[2] = mat4.Dot(row[1], row[2])
	row[2] = mat4.Combine(row[2], row[1], 1, -res.Skew[2])

	res.Scale[2] = mat4.Length(row[2])
	row[2] = mat4.Normalize(row[2], res.Scale[2])
	res.Skew[1] /= res.Scale[2]
	res.Skew[2] /= res.Scale[2]

	// Stage 5: the rows are orthonormal now; a negative triple product is a flip.
	if mat4.Dot(row[0], mat4.Cross(row[1], row[2])) < 0 {
		for i = 0; i < 3; i++ {
			res.Scale[i] = -res.Scale[i]
			row[i][0], row[i][1], row[i][2] = -row[i][0], -row[i][1], -row[i][2]
		}
	}

	// Stage 6: rotation.
	res.Quaternion = rotation.FromBasis(row)
	if !o.rotationDegrees {
		return nil
	}
	if rotation.IsPlanar(res.Quaternion) {
		res.RotationDegrees = rotation.PlanarDegrees(row[0])
	} else {
		res.RotationDegrees = rotation.ToDegreesXYZ(res.Quaternion)
	}

	return nil
}
