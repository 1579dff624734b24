package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapframe/pkg/frame"
)

func testFrame(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.FromColumns([]frame.Pair{
		{Name: "id", Value: []int64{1, 2, 3}},
		{Name: "label", Value: "x"},
	})
	require.NoError(t, err)
	return tbl
}

func TestRenderTable(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderFrame(buf, testFrame(t), "table")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "id <int>")
	assert.Contains(t, out, "label <string>")
	assert.Contains(t, out, "(3 rows)")
}

func TestRenderTableEmpty(t *testing.T) {
	tbl, err := frame.FromColumns(nil)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, renderFrame(buf, tbl, "table"))
	assert.Contains(t, buf.String(), "(empty frame)")
}

func TestRenderJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderFrame(buf, testFrame(t), "json")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"id": 1`)
	assert.Contains(t, out, `"label": "x"`)
}

func TestRenderCSV(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderFrame(buf, testFrame(t), "csv")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "id,label")
	assert.Contains(t, out, "1,x")
	assert.Contains(t, out, "3,x")
}

func TestRenderMarkdown(t *testing.T) {
	buf := new(bytes.Buffer)
	err := renderFrame(buf, testFrame(t), "md")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "| id | label |")
	assert.Contains(t, out, "| 1 | x |")
}

func TestRenderDefaultsToTable(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, renderFrame(buf, testFrame(t), ""))
	assert.Contains(t, buf.String(), "(3 rows)")
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"has,comma", `"has,comma"`},
		{`has"quote`, `"has""quote"`},
		{"has\nnewline", "\"has\nnewline\""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeCSV(tt.in))
	}
}
