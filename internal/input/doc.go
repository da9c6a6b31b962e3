// SPDX-License-Identifier: MIT

// Package input loads transform documents for the unmatrix CLI.
//
// A document is YAML (JSON is accepted as a YAML subset), optionally
// compressed with gzip or zstd. Every document is validated against the
// embedded transform.schema.json before it is decoded, so the typed
// structures only ever see well-formed input:
//
//	transforms:
//	  - name: raw
//	    matrix: [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 5, 0, 0, 1]
//	  - name: built
//	    ops:
//	      - translate: [10, 20, 0]
//	      - rotateZ: 0.5235987755982988
//	      - scale: [2, 2, 1]
//
// Ops are folded left to right with mat4.MultiplyAfter starting from the
// identity, so the list reads like a CSS transform property.
package input
