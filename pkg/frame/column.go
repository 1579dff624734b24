package frame

import (
	"fmt"
	"time"
)

// Kind is the element kind of a Column.
type Kind int

// Permitted column element kinds.
const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindTime
	// KindList holds one opaque value per row; elements are never inspected.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindList:
		return "list"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// LocalTime is the broken-down wall-clock representation of an instant:
// calendar fields relative to a named zone, with no fixed point on the
// absolute timeline. Frames reject columns of LocalTime values; use
// time.Time for temporal columns.
type LocalTime struct {
	Year  int
	Month time.Month
	Day   int
	Hour  int
	Min   int
	Sec   int
	Nsec  int
	Zone  string
}

func (lt LocalTime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", lt.Year, int(lt.Month), lt.Day, lt.Hour, lt.Min, lt.Sec)
	if lt.Zone != "" {
		s += " " + lt.Zone
	}
	return s
}

// Column is one realized table field: a flat sequence of elements of a
// single Kind. A producer may annotate a Column with shape metadata via
// Shaped; validation strips single-dimension metadata and rejects the rest.
type Column struct {
	kind Kind
	// data is one of []bool, []int64, []float64, []string, []time.Time
	// or []any, matching kind.
	data any
	dims []int
}

// Bools returns a bool Column.
func Bools(v ...bool) Column {
	return Column{kind: KindBool, data: append([]bool{}, v...)}
}

// Ints returns an int Column.
func Ints(v ...int64) Column {
	return Column{kind: KindInt, data: append([]int64{}, v...)}
}

// Floats returns a float Column.
func Floats(v ...float64) Column {
	return Column{kind: KindFloat, data: append([]float64{}, v...)}
}

// Strings returns a string Column.
func Strings(v ...string) Column {
	return Column{kind: KindString, data: append([]string{}, v...)}
}

// Times returns a time Column of absolute instants.
func Times(v ...time.Time) Column {
	return Column{kind: KindTime, data: append([]time.Time{}, v...)}
}

// List returns a list Column whose elements are opaque values.
func List(v ...any) Column {
	return Column{kind: KindList, data: append([]any{}, v...)}
}

// Shaped returns a copy of col carrying explicit shape metadata, the way
// an array-producing expression engine would hand it over. Validation
// strips the metadata when it names a single dimension and rejects the
// column otherwise.
func Shaped(col Column, dims ...int) Column {
	col.dims = append([]int{}, dims...)
	return col
}

// Kind returns the element kind.
func (c Column) Kind() Kind { return c.kind }

// Dims returns the shape metadata, nil for a plain vector.
func (c Column) Dims() []int { return c.dims }

// Len returns the element count.
func (c Column) Len() int {
	switch d := c.data.(type) {
	case []bool:
		return len(d)
	case []int64:
		return len(d)
	case []float64:
		return len(d)
	case []string:
		return len(d)
	case []time.Time:
		return len(d)
	case []any:
		return len(d)
	}
	return 0
}

// At returns element i as an untyped value.
func (c Column) At(i int) any {
	switch d := c.data.(type) {
	case []bool:
		return d[i]
	case []int64:
		return d[i]
	case []float64:
		return d[i]
	case []string:
		return d[i]
	case []time.Time:
		return d[i]
	case []any:
		return d[i]
	}
	return nil
}

// Data returns the backing slice (one of []bool, []int64, []float64,
// []string, []time.Time, []any).
func (c Column) Data() any { return c.data }

// Bools returns the backing slice for a bool Column, nil otherwise.
func (c Column) Bools() []bool {
	d, _ := c.data.([]bool)
	return d
}

// Ints returns the backing slice for an int Column, nil otherwise.
func (c Column) Ints() []int64 {
	d, _ := c.data.([]int64)
	return d
}

// Floats returns the backing slice for a float Column, nil otherwise.
func (c Column) Floats() []float64 {
	d, _ := c.data.([]float64)
	return d
}

// Strings returns the backing slice for a string Column, nil otherwise.
func (c Column) Strings() []string {
	d, _ := c.data.([]string)
	return d
}

// Times returns the backing slice for a time Column, nil otherwise.
func (c Column) Times() []time.Time {
	d, _ := c.data.([]time.Time)
	return d
}

// Values returns the backing slice for a list Column, nil otherwise.
func (c Column) Values() []any {
	d, _ := c.data.([]any)
	return d
}

// repeat stretches a length-1 column to n elements by repetition.
func (c Column) repeat(n int) Column {
	switch d := c.data.(type) {
	case []bool:
		out := make([]bool, n)
		for i := range out {
			out[i] = d[0]
		}
		return Column{kind: c.kind, data: out}
	case []int64:
		out := make([]int64, n)
		for i := range out {
			out[i] = d[0]
		}
		return Column{kind: c.kind, data: out}
	case []float64:
		out := make([]float64, n)
		for i := range out {
			out[i] = d[0]
		}
		return Column{kind: c.kind, data: out}
	case []string:
		out := make([]string, n)
		for i := range out {
			out[i] = d[0]
		}
		return Column{kind: c.kind, data: out}
	case []time.Time:
		out := make([]time.Time, n)
		for i := range out {
			out[i] = d[0]
		}
		return Column{kind: c.kind, data: out}
	case []any:
		out := make([]any, n)
		for i := range out {
			out[i] = d[0]
		}
		return Column{kind: c.kind, data: out}
	}
	return c
}
