// SPDX-License-Identifier: MIT

package input

import "errors"

var (
	// ErrDecode is returned when the document is not valid YAML/JSON.
	ErrDecode = errors.New("input: cannot decode document")

	// ErrSchema is returned when the document violates transform.schema.json.
	ErrSchema = errors.New("input: document does not match schema")

	// ErrCompression is returned for an unknown or corrupt compression layer.
	ErrCompression = errors.New("input: bad compression")

	// ErrBadOp is returned when an op sets zero or several operations.
	ErrBadOp = errors.New("input: op must set exactly one operation")

	// ErrEmptyTransform is returned when a transform has neither matrix nor ops.
	ErrEmptyTransform = errors.New("input: transform has neither matrix nor ops")
)
