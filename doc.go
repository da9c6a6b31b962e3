// Package expo is the root of a small transform-math toolkit used by
// animation and layout engines.
//
// What is inside:
//
//	mat4/         row-major 4×4 matrices and 3-vectors: construction,
//	              composition, determinant, inverse, transpose
//	rotation/     quaternion (w last) extraction and XYZ Euler degrees
//	decompose/    split a transform into perspective, translation, scale,
//	              skew and rotation
//	cmd/unmatrix  CLI that decomposes the transforms of a YAML/JSON document
//
// Quick example:
//
//	m := mat4.MultiplyAfter(mat4.Translate(10, 20, 0), mat4.RotateZ(math.Pi/6))
//	res, err := decompose.Decompose(m)
//	// res.Translation == {10, 20, 0}, res.RotationDegrees ≈ {0, 0, 30}
//
// All library packages are pure Go, allocation-free on their hot paths and
// safe for concurrent use on distinct values.
package expo
