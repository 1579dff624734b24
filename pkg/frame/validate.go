package frame

import (
	"fmt"
	"time"
)

// Classification outcomes for a raw column value.
const (
	shapeVector = iota
	shapeInvalid
	shapeLocalTime
)

// validate runs the check sequence on an ordered mapping: name presence,
// name uniqueness, shape validity, dimension stripping, forbidden temporal
// representation. Each check collects every offender before failing, and a
// later check only runs once all earlier checks pass.
func validate(cols []Pair) ([]namedColumn, error) {
	var missing []int
	for i, c := range cols {
		if c.Name == "" {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, &UnnamedColumnError{Positions: missing}
	}

	seen := make(map[string]int, len(cols))
	var dups []string
	for _, c := range cols {
		seen[c.Name]++
		if seen[c.Name] == 2 {
			dups = append(dups, c.Name)
		}
	}
	if len(dups) > 0 {
		return nil, &DuplicateNameError{Names: dups}
	}

	out := make([]namedColumn, len(cols))
	var badNames, badClasses []string
	var localNames []string
	for i, c := range cols {
		col, class, shape := classify(c.Value)
		switch shape {
		case shapeInvalid:
			badNames = append(badNames, c.Name)
			badClasses = append(badClasses, class)
		case shapeLocalTime:
			localNames = append(localNames, c.Name)
		default:
			out[i] = namedColumn{name: c.Name, col: col}
		}
	}
	if len(badNames) > 0 {
		return nil, &NotVectorError{Names: badNames, Classes: badClasses}
	}

	// A single-dimension annotation is just a vector wearing shape
	// metadata; drop it without touching the elements.
	for i := range out {
		if len(out[i].col.dims) == 1 {
			out[i].col.dims = nil
		}
	}

	if len(localNames) > 0 {
		return nil, &LocalTimeError{Names: localNames}
	}

	return out, nil
}

// classify turns a raw evaluated value into a Column, or labels why it
// cannot be one. Bare scalars become length-1 columns of the matching
// kind; that is scalar promotion, not coercion between kinds.
func classify(v any) (Column, string, int) {
	switch val := v.(type) {
	case Column:
		if len(val.dims) >= 2 {
			return Column{}, fmt.Sprintf("a %d-dimensional array", len(val.dims)), shapeInvalid
		}
		return val, "", shapeVector
	case *Table:
		return Column{}, "a table", shapeInvalid
	case Table:
		return Column{}, "a table", shapeInvalid

	case bool:
		return Bools(val), "", shapeVector
	case []bool:
		return Column{kind: KindBool, data: val}, "", shapeVector
	case int:
		return Ints(int64(val)), "", shapeVector
	case int64:
		return Ints(val), "", shapeVector
	case []int64:
		return Column{kind: KindInt, data: val}, "", shapeVector
	case []int:
		out := make([]int64, len(val))
		for i, n := range val {
			out[i] = int64(n)
		}
		return Column{kind: KindInt, data: out}, "", shapeVector
	case float64:
		return Floats(val), "", shapeVector
	case []float64:
		return Column{kind: KindFloat, data: val}, "", shapeVector
	case string:
		return Strings(val), "", shapeVector
	case []string:
		return Column{kind: KindString, data: val}, "", shapeVector
	case time.Time:
		return Times(val), "", shapeVector
	case []time.Time:
		return Column{kind: KindTime, data: val}, "", shapeVector

	case LocalTime:
		return Column{}, "", shapeLocalTime
	case []LocalTime:
		return Column{}, "", shapeLocalTime

	case []any:
		return Column{kind: KindList, data: val}, "", shapeVector

	case nil:
		return Column{}, "nil", shapeInvalid
	default:
		return Column{}, fmt.Sprintf("%T", v), shapeInvalid
	}
}
