package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// UnnamedColumnError reports every column whose name is missing or empty.
// Positions are zero-based indexes into the input mapping.
type UnnamedColumnError struct {
	Positions []int
}

func (e *UnnamedColumnError) Error() string {
	return fmt.Sprintf("each column must be named: missing name at position %s", joinInts(e.Positions))
}

// DuplicateNameError reports every name bound to more than one column.
type DuplicateNameError struct {
	Names []string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("each column must have a unique name: duplicated %s", joinQuoted(e.Names))
}

// NotVectorError reports every column that is not a flat one-dimensional
// sequence, with the observed type label per offender.
type NotVectorError struct {
	Names   []string
	Classes []string
}

func (e *NotVectorError) Error() string {
	parts := make([]string, len(e.Names))
	for i, n := range e.Names {
		class := "unknown"
		if i < len(e.Classes) {
			class = e.Classes[i]
		}
		parts[i] = fmt.Sprintf("%q is %s", n, class)
	}
	return "each column must be a 1d vector: " + strings.Join(parts, ", ")
}

// LocalTimeError reports every column using the broken-down local-time
// representation instead of absolute instants.
type LocalTimeError struct {
	Names []string
}

func (e *LocalTimeError) Error() string {
	return fmt.Sprintf("time columns must hold absolute instants, not broken-down local time: %s", joinQuoted(e.Names))
}

// LengthMismatchError reports every column whose length is neither 1 nor
// the recycling target.
type LengthMismatchError struct {
	Names   []string
	Lengths []int
	Target  int
}

func (e *LengthMismatchError) Error() string {
	parts := make([]string, len(e.Names))
	for i, n := range e.Names {
		length := -1
		if i < len(e.Lengths) {
			length = e.Lengths[i]
		}
		parts[i] = fmt.Sprintf("%q has length %d", n, length)
	}
	return fmt.Sprintf("columns must be length 1 or %d: %s", e.Target, strings.Join(parts, ", "))
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func joinQuoted(v []string) string {
	parts := make([]string, len(v))
	for i, s := range v {
		parts[i] = strconv.Quote(s)
	}
	return strings.Join(parts, ", ")
}
