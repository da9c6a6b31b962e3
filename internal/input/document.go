// SPDX-License-Identifier: MIT

package input

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lgraubner/expo/mat4"
)

// Document is a list of named transforms.
type Document struct {
	Transforms []Transform `yaml:"transforms" json:"transforms"`
}

// Transform is either a raw 16-value row-major matrix or a list of ops.
type Transform struct {
	Name   string    `yaml:"name" json:"name"`
	Matrix []float64 `yaml:"matrix,omitempty" json:"matrix,omitempty"`
	Ops    []Op      `yaml:"ops,omitempty" json:"ops,omitempty"`
}

// Op is one primitive. Exactly one field is set.
type Op struct {
	Translate []float64 `yaml:"translate,omitempty" json:"translate,omitempty"`
	Scale     []float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
	RotateZ   *float64  `yaml:"rotateZ,omitempty" json:"rotateZ,omitempty"`
}

// Parse decodes and validates a YAML or JSON document.
//
// Implementation:
//   - Stage 1: decode into a generic tree with yaml.v3.
//   - Stage 2: normalize the tree through encoding/json so the schema
//     validator sees plain JSON types, then validate.
//   - Stage 3: decode into Document.
func Parse(data []byte) (Document, error) {
	var doc Document

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return doc, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	var generic any
	if err = json.Unmarshal(raw, &generic); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err = Validate(generic); err != nil {
		return doc, err
	}

	if err = yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return doc, nil
}

// Build returns the matrix described by t.
func (t Transform) Build() (mat4.Mat4, error) {
	switch {
	case len(t.Matrix) > 0:
		m, err := mat4.FromSlice(t.Matrix)
		if err != nil {
			return m, fmt.Errorf("transform %q: %w", t.Name, err)
		}
		return m, nil
	case len(t.Ops) > 0:
		acc := mat4.Identity()
		for i, op := range t.Ops {
			m, err := op.Matrix()
			if err != nil {
				return acc, fmt.Errorf("transform %q op %d: %w", t.Name, i, err)
			}
			acc = mat4.MultiplyAfter(acc, m)
		}
		return acc, nil
	default:
		return mat4.Identity(), fmt.Errorf("transform %q: %w", t.Name, ErrEmptyTransform)
	}
}

// Matrix returns the primitive matrix for a single op.
func (o Op) Matrix() (mat4.Mat4, error) {
	set := 0
	if o.Translate != nil {
		set++
	}
	if o.Scale != nil {
		set++
	}
	if o.RotateZ != nil {
		set++
	}
	if set != 1 {
		return mat4.Identity(), ErrBadOp
	}

	switch {
	case o.Translate != nil:
		v, err := vec3(o.Translate)
		if err != nil {
			return mat4.Identity(), err
		}
		return mat4.Translate(v[0], v[1], v[2]), nil
	case o.Scale != nil:
		v, err := vec3(o.Scale)
		if err != nil {
			return mat4.Identity(), err
		}
		return mat4.Scale(v[0], v[1], v[2]), nil
	default:
		return mat4.RotateZ(*o.RotateZ), nil
	}
}

func vec3(values []float64) (mat4.Vec3, error) {
	var v mat4.Vec3
	if len(values) != len(v) {
		return v, fmt.Errorf("%w: want 3 components, got %d", ErrBadOp, len(values))
	}
	copy(v[:], values)

	return v, nil
}
