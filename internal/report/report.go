// SPDX-License-Identifier: MIT

// Package report renders decomposition results for the unmatrix CLI.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgraubner/expo/decompose"
)

// Format selects the output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrFormat is returned for an unsupported output format.
var ErrFormat = errors.New("report: unknown format")

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// StatusNonFinite marks a decomposition that succeeded but produced NaN or
// ±Inf components, e.g. from an overflowing homogeneous divide.
const StatusNonFinite = "non-finite"

// Entry is the report row for one named transform. The component fields
// are nil unless Status is "ok" or StatusNonFinite.
type Entry struct {
	Name            string    `yaml:"name" json:"name"`
	Status          string    `yaml:"status" json:"status"`
	Error           string    `yaml:"error,omitempty" json:"error,omitempty"`
	Perspective     []float64 `yaml:"perspective,omitempty,flow" json:"perspective,omitempty"`
	Translation     []float64 `yaml:"translation,omitempty,flow" json:"translation,omitempty"`
	Scale           []float64 `yaml:"scale,omitempty,flow" json:"scale,omitempty"`
	Skew            []float64 `yaml:"skew,omitempty,flow" json:"skew,omitempty"`
	Quaternion      []float64 `yaml:"quaternion,omitempty,flow" json:"quaternion,omitempty"`
	RotationDegrees []float64 `yaml:"rotationDegrees,omitempty,flow" json:"rotationDegrees,omitempty"`
}

// Report is the top-level document.
type Report struct {
	Results []Entry `yaml:"results" json:"results"`
}

// NewEntry builds the row for name from a decomposition outcome.
func NewEntry(name string, res decompose.Result, err error) Entry {
	e := Entry{Name: name, Status: decompose.Reason(err).String()}
	if err != nil {
		e.Error = err.Error()
		return e
	}
	e.Perspective = res.Perspective[:]
	e.Translation = res.Translation[:]
	e.Scale = res.Scale[:]
	e.Skew = res.Skew[:]
	e.Quaternion = res.Quaternion[:]
	e.RotationDegrees = res.RotationDegrees[:]
	if !e.finite() {
		e.Status = StatusNonFinite
		e.Error = "result has NaN or infinite components"
	}

	return e
}

func (e Entry) finite() bool {
	for _, part := range [][]float64{e.Perspective, e.Translation, e.Scale, e.Skew, e.Quaternion, e.RotationDegrees} {
		for _, v := range part {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}

// jsonEntry mirrors Entry with nullable components.
type jsonEntry struct {
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	Error           string     `json:"error,omitempty"`
	Perspective     []*float64 `json:"perspective,omitempty"`
	Translation     []*float64 `json:"translation,omitempty"`
	Scale           []*float64 `json:"scale,omitempty"`
	Skew            []*float64 `json:"skew,omitempty"`
	Quaternion      []*float64 `json:"quaternion,omitempty"`
	RotationDegrees []*float64 `json:"rotationDegrees,omitempty"`
}

// MarshalJSON implements json.Marshaler. JSON has no NaN or Inf, so those
// components are written as null; YAML keeps them as .nan and .inf.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEntry{
		Name:            e.Name,
		Status:          e.Status,
		Error:           e.Error,
		Perspective:     nullable(e.Perspective),
		Translation:     nullable(e.Translation),
		Scale:           nullable(e.Scale),
		Skew:            nullable(e.Skew),
		Quaternion:      nullable(e.Quaternion),
		RotationDegrees: nullable(e.RotationDegrees),
	})
}

func nullable(values []float64) []*float64 {
	if values == nil {
		return nil
	}
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			continue
		}
		out[i] = &values[i]
	}

	return out
}

// Failed counts entries whose status is not ok.
func (r Report) Failed() int {
	n := 0
	for _, e := range r.Results {
		if e.Status != decompose.StatusOK.String() {
			n++
		}
	}

	return n
}

// Write encodes r to w in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrFormat, f)
	}
}
