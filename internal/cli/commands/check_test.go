package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheckValid(t *testing.T) {
	path := writeSpec(t, `
columns:
  - name: id
    expr: "[1, 2, 3]"
  - name: flag
    expr: "True"
`)

	buf := new(bytes.Buffer)
	require.NoError(t, runCheck(buf, path, nil))

	out := buf.String()
	assert.Contains(t, out, "OK: 2 columns x 3 rows")
	assert.Contains(t, out, "id <int>")
	assert.Contains(t, out, "flag <bool>")
}

func TestRunCheckLengthMismatch(t *testing.T) {
	path := writeSpec(t, `
columns:
  - name: a
    expr: "[1, 2, 3]"
  - name: b
    expr: "[1, 2]"
`)

	buf := new(bytes.Buffer)
	err := runCheck(buf, path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid frame spec")
	assert.Contains(t, buf.String(), `column "b": length 2 cannot recycle to 3 rows`)
}

func TestRunCheckEvalError(t *testing.T) {
	path := writeSpec(t, `
columns:
  - name: bad
    expr: "nope + 1"
`)

	buf := new(bytes.Buffer)
	err := runCheck(buf, path, nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "nope + 1")
}

func TestRunCheckMissingSpec(t *testing.T) {
	buf := new(bytes.Buffer)
	err := runCheck(buf, "does-not-exist.yaml", nil)
	assert.Error(t, err)
}
