// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lgraubner/expo/decompose"
	"github.com/lgraubner/expo/internal/report"
	"github.com/lgraubner/expo/mat4"
)

func sampleReport(t *testing.T) report.Report {
	t.Helper()
	res, err := decompose.Decompose(mat4.Translate(1, 2, 3))
	require.NoError(t, err)

	bad := mat4.Identity()
	bad[15] = 0
	_, badErr := decompose.Decompose(bad)
	require.Error(t, badErr)

	return report.Report{Results: []report.Entry{
		report.NewEntry("moved", res, nil),
		report.NewEntry("flat", decompose.Result{}, badErr),
	}}
}

func TestNewEntry(t *testing.T) {
	r := sampleReport(t)

	ok := r.Results[0]
	require.Equal(t, "ok", ok.Status)
	require.Empty(t, ok.Error)
	require.Equal(t, []float64{1, 2, 3}, ok.Translation)
	require.Equal(t, []float64{0, 0, 0, 1}, ok.Perspective)
	require.Len(t, ok.Quaternion, 4)
	require.Len(t, ok.RotationDegrees, 3)

	failed := r.Results[1]
	require.Equal(t, "singular-w", failed.Status)
	require.Contains(t, failed.Error, "homogeneous")
	require.Nil(t, failed.Scale)

	require.Equal(t, 1, r.Failed())
}

func TestWrite_YAMLRoundTrip(t *testing.T) {
	r := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, r, report.FormatYAML))
	require.Contains(t, buf.String(), "translation: [1, 2, 3]")

	var back report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, r, back)
}

func TestWrite_JSON(t *testing.T) {
	r := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, r, report.FormatJSON))

	var back report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, r, back)
}

// overflowEntry decomposes a matrix whose homogeneous divide overflows.
func overflowEntry(t *testing.T) report.Entry {
	t.Helper()
	m := mat4.Scale(1e305, 1, 1)
	m[15] = 1e-4
	res, err := decompose.Decompose(m)
	require.NoError(t, err)

	return report.NewEntry("huge", res, nil)
}

func TestNewEntry_NonFinite(t *testing.T) {
	e := overflowEntry(t)
	require.Equal(t, report.StatusNonFinite, e.Status)
	require.NotEmpty(t, e.Error)
	require.True(t, math.IsInf(e.Scale[0], 1))

	r := report.Report{Results: []report.Entry{e}}
	require.Equal(t, 1, r.Failed())

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, r, report.FormatYAML))
	require.Contains(t, buf.String(), ".inf")
}

func TestWrite_JSONNonFinite(t *testing.T) {
	r := sampleReport(t)
	r.Results = append(r.Results, overflowEntry(t))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, r, report.FormatJSON))

	var raw struct {
		Results []struct {
			Status string     `json:"status"`
			Scale  []*float64 `json:"scale"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw.Results, 3)
	require.Equal(t, "ok", raw.Results[0].Status)

	huge := raw.Results[2]
	require.Equal(t, report.StatusNonFinite, huge.Status)
	require.Len(t, huge.Scale, 3)
	require.Nil(t, huge.Scale[0])
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"yaml": report.FormatYAML,
		"YML":  report.FormatYAML,
		"json": report.FormatJSON,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := report.ParseFormat("toml")
	require.ErrorIs(t, err, report.ErrFormat)

	require.ErrorIs(t, report.Write(&bytes.Buffer{}, report.Report{}, "xml"), report.ErrFormat)
}
