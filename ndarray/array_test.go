package ndarray

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/helpers/testutil"
)

func TestNew(t *testing.T) {
	a, err := New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 2, a.Ndim())
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, 6.0, a.At(1, 2))
	assert.Equal(t, 2.0, a.At(0, 1))

	a.Set(9, 0, 0)
	assert.Equal(t, 9.0, a.At(0, 0))

	_, err = New([]int{2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New([]int{-1}, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNew_CopiesInput(t *testing.T) {
	data := []float64{1, 2}
	a, err := New([]int{2}, data)
	require.NoError(t, err)
	data[0] = 42
	assert.Equal(t, 1.0, a.At(0))
}

func TestAt_OutOfRange(t *testing.T) {
	a := Zeros(2, 2)
	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0) })
	assert.Panics(t, func() { Zeros(-1) })
}

func TestToList(t *testing.T) {
	a, err := New([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}, a.ToList())

	assert.Equal(t, 3.5, Scalar(3.5).ToList())
	assert.Equal(t, []any{}, Zeros(0).ToList())
	assert.Equal(t, []any{1.0, 2.0}, FromSlice([]float64{1, 2}).ToList())
}

func TestFromList(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		shape []int
		data  []float64
	}{
		{"scalar", 2.5, []int{}, []float64{2.5}},
		{"json number", json.Number("7"), []int{}, []float64{7}},
		{"vector", []any{1.0, 2.0, 3.0}, []int{3}, []float64{1, 2, 3}},
		{"float slice", []float64{4, 5}, []int{2}, []float64{4, 5}},
		{"matrix", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}, []int{2, 2}, []float64{1, 2, 3, 4}},
		{"mixed leaves", []any{[]float64{1, 2}, []any{3, int64(4)}}, []int{2, 2}, []float64{1, 2, 3, 4}},
		{"empty", []any{}, []int{0}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := FromList(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, a.Shape())
			assert.Equal(t, tt.data, a.Data())
		})
	}
}

func TestFromList_Invalid(t *testing.T) {
	_, err := FromList([]any{[]any{1.0, 2.0}, []any{3.0}})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = FromList([]any{1.0, []any{2.0}})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = FromList([]any{[]any{1.0}, 2.0})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = FromList([]any{"a"})
	assert.ErrorIs(t, err, ErrUnsupportedElement)

	_, err = FromList(map[string]any{})
	assert.ErrorIs(t, err, ErrUnsupportedElement)
}

func TestRoundTripList(t *testing.T) {
	rng := testutil.NewRNG(1)
	a := Random(rng, 3, 2, 4)

	b, err := FromList(a.ToList())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestRoundTripList_RandomShapes(t *testing.T) {
	rng := testutil.NewRNG(3)

	for range 10 {
		shape := make([]int, rng.Intn(3)+1)
		for i := range shape {
			shape[i] = rng.Intn(4) + 1
		}
		a := Random(rng, shape...)

		b, err := FromList(a.ToList())
		require.NoError(t, err)
		assert.Equal(t, shape, b.Shape())
		assert.True(t, a.Equal(b))
	}
}

func TestEqual(t *testing.T) {
	a := FromSlice([]float64{1, 2})
	assert.True(t, a.Equal(FromSlice([]float64{1, 2})))
	assert.False(t, a.Equal(FromSlice([]float64{1, 3})))

	m, err := New([]int{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	assert.False(t, a.Equal(m))

	assert.False(t, Scalar(math.NaN()).Equal(Scalar(math.NaN())))

	var null *Array
	assert.True(t, null.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[[1 2] [3 4]]", func() string {
		a, _ := New([]int{2, 2}, []float64{1, 2, 3, 4})
		return a.String()
	}())
}
