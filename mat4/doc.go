// SPDX-License-Identifier: MIT

// Package mat4 provides the fixed-size linear algebra used by transform
// decomposition: 4×4 homogeneous matrices and 3-component vectors.
//
// What & Why:
//
//	Mat4 is a value type holding 16 float64 values in ROW-MAJOR order with
//	the translation stored in the last row (indices 12, 13, 14) and the
//	homogeneous scale in index 15. This is NOT the column-major OpenGL
//	layout; callers porting matrices from such APIs must Transpose first.
//
//	All operations are total. They never allocate on the heap, never panic
//	and return fresh values, so a Mat4 may be shared freely between
//	goroutines.
//
// Composition order:
//
//	MultiplyAfter(a, b) returns b·a: row i of the result is row i of b
//	against the columns of a. Folding a transform list left to right as
//	acc = MultiplyAfter(acc, op) gives CSS-style semantics, where a row
//	vector p maps to p·opN·…·op1 and the last listed op touches p first.
//	MultiplyAfter(Translate(1, 0, 0), Scale(2, 2, 2)) therefore keeps the
//	translation at (1, 0, 0), while the reversed call yields (2, 0, 0).
//
// Numeric policy:
//
//	Epsilon (1e-5) is the single process-wide tolerance. IsZero treats NaN
//	as non-zero so that NaN propagates instead of being mistaken for zero.
//
// Complexity:
//
//	Every function runs in O(1) time and space.
package mat4
