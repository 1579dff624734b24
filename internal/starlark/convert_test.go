package starlark

import (
	"testing"
	"time"

	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoToStarlarkRoundTrip(t *testing.T) {
	instant := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "string", in: "x", want: "x"},
		{name: "int", in: 7, want: int64(7)},
		{name: "int64", in: int64(7), want: int64(7)},
		{name: "float", in: 1.5, want: 1.5},
		{name: "bool", in: true, want: true},
		{name: "time", in: instant, want: instant},
		{name: "int vector", in: []int64{1, 2}, want: []int64{1, 2}},
		{name: "string vector", in: []string{"a"}, want: []string{"a"}},
		{name: "float vector", in: []float64{1.5}, want: []float64{1.5}},
		{name: "bool vector", in: []bool{true}, want: []bool{true}},
		{name: "time vector", in: []time.Time{instant}, want: []time.Time{instant}},
		{name: "nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv, err := GoToStarlark(tt.in)
			require.NoError(t, err)

			back, err := ToGo(sv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, back)
		})
	}
}

func TestGoToStarlarkUnsupported(t *testing.T) {
	_, err := GoToStarlark(struct{}{})
	assert.Error(t, err)
}

func TestToGoNarrowing(t *testing.T) {
	mixed := starlark.NewList([]starlark.Value{
		starlark.MakeInt(1),
		starlark.String("two"),
	})

	got, err := ToGo(mixed)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "two"}, got, "mixed list must not narrow")
}

func TestToGoEmptyList(t *testing.T) {
	got, err := ToGo(starlark.NewList(nil))
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestToGoTime(t *testing.T) {
	instant := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	got, err := ToGo(startime.Time(instant))
	require.NoError(t, err)
	assert.Equal(t, instant, got)
}

func TestToGoDict(t *testing.T) {
	d := starlark.NewDict(1)
	require.NoError(t, d.SetKey(starlark.String("k"), starlark.MakeInt(1)))

	got, err := ToGo(d)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": int64(1)}, got)
}
