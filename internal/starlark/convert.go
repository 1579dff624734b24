package starlark

import (
	"fmt"
	"time"

	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
)

// GoToStarlark converts a Go value to a Starlark value.
// Supported: nil, bool, int, int64, float64, string, time.Time, slices of
// those, []any, and map[string]any.
func GoToStarlark(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}

	switch val := v.(type) {
	case string:
		return starlark.String(val), nil

	case int:
		return starlark.MakeInt(val), nil

	case int64:
		return starlark.MakeInt64(val), nil

	case float64:
		return starlark.Float(val), nil

	case bool:
		return starlark.Bool(val), nil

	case time.Time:
		return startime.Time(val), nil

	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil

	case []int64:
		list := make([]starlark.Value, len(val))
		for i, n := range val {
			list[i] = starlark.MakeInt64(n)
		}
		return starlark.NewList(list), nil

	case []float64:
		list := make([]starlark.Value, len(val))
		for i, f := range val {
			list[i] = starlark.Float(f)
		}
		return starlark.NewList(list), nil

	case []bool:
		list := make([]starlark.Value, len(val))
		for i, b := range val {
			list[i] = starlark.Bool(b)
		}
		return starlark.NewList(list), nil

	case []time.Time:
		list := make([]starlark.Value, len(val))
		for i, t := range val {
			list[i] = startime.Time(t)
		}
		return starlark.NewList(list), nil

	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := GoToStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil

	case map[string]any:
		dict := starlark.NewDict(len(val))
		for k, v := range val {
			sv, err := GoToStarlark(v)
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, fmt.Errorf("dict setkey %q: %w", k, err)
			}
		}
		return dict, nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToGo converts a Starlark value back to a Go value suitable for column
// classification. Homogeneous lists narrow to a typed vector; mixed lists
// and tuples stay []any, which the frame treats as an opaque list column.
func ToGo(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil

	case starlark.String:
		return string(val), nil

	case starlark.Int:
		i64, ok := val.Int64()
		if !ok {
			// Very large integers fall back to their decimal text
			return val.String(), nil
		}
		return i64, nil

	case starlark.Float:
		return float64(val), nil

	case starlark.Bool:
		return bool(val), nil

	case startime.Time:
		return time.Time(val), nil

	case *starlark.List:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := ToGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			result[i] = gv
		}
		return narrow(result), nil

	case starlark.Tuple:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := ToGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("tuple index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	case *starlark.Dict:
		result := make(map[string]any)
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			gv, err := ToGo(item[1])
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", key, err)
			}
			result[string(key)] = gv
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported starlark type: %s", v.Type())
	}
}

// narrow collapses a homogeneous []any into a typed vector. An empty list
// stays []any (a zero-row opaque column).
func narrow(vals []any) any {
	if len(vals) == 0 {
		return vals
	}

	switch vals[0].(type) {
	case int64:
		out := make([]int64, len(vals))
		for i, v := range vals {
			n, ok := v.(int64)
			if !ok {
				return vals
			}
			out[i] = n
		}
		return out
	case float64:
		out := make([]float64, len(vals))
		for i, v := range vals {
			f, ok := v.(float64)
			if !ok {
				return vals
			}
			out[i] = f
		}
		return out
	case string:
		out := make([]string, len(vals))
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				return vals
			}
			out[i] = s
		}
		return out
	case bool:
		out := make([]bool, len(vals))
		for i, v := range vals {
			b, ok := v.(bool)
			if !ok {
				return vals
			}
			out[i] = b
		}
		return out
	case time.Time:
		out := make([]time.Time, len(vals))
		for i, v := range vals {
			t, ok := v.(time.Time)
			if !ok {
				return vals
			}
			out[i] = t
		}
		return out
	}
	return vals
}
