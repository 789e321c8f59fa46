package jsoncoder_test

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/helpers/jsoncoder"
	"github.com/hupe1980/helpers/ndarray"
	"github.com/hupe1980/helpers/optimize"
)

func TestCombineDecoders(t *testing.T) {
	bounds := optimize.NewBounds(1, 10)
	obj := []any{bounds, 1 + 4i}

	enc := jsoncoder.Combine("Encoder",
		jsoncoder.BoundsEncoder(),
		jsoncoder.Complex(),
		jsoncoder.Numeric(),
	)
	data, err := jsoncoder.Marshal(obj, enc)
	require.NoError(t, err)

	decoder := jsoncoder.CombineDecoders(jsoncoder.BoundsDecode, jsoncoder.ComplexDecode)
	obj2, err := jsoncoder.Unmarshal(data, decoder)
	require.NoError(t, err)

	list, ok := obj2.([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.True(t, bounds.Equal(list[0].(*optimize.Bounds)))
	assert.Equal(t, 1+4i, list[1])
}

func TestCombineDecoders_OrderIndependent(t *testing.T) {
	data := []byte(`[{"complex":true,"real":1,"imag":4},{"Bounds":true,"lb":1,"ub":10,"keep_feasible":false}]`)

	a, err := jsoncoder.Unmarshal(data, jsoncoder.CombineDecoders(jsoncoder.BoundsDecode, jsoncoder.ComplexDecode))
	require.NoError(t, err)
	b, err := jsoncoder.Unmarshal(data, jsoncoder.CombineDecoders(jsoncoder.ComplexDecode, jsoncoder.BoundsDecode))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCombineDecoders_ObjectResultIsPassThrough(t *testing.T) {
	replacing := func(*jsoncoder.Object) any { return jsoncoder.ObjectOf("other", true) }
	dec := jsoncoder.CombineDecoders(replacing, nil)

	obj := jsoncoder.ObjectOf("a", 1.0)
	assert.Same(t, obj, dec(obj))
}

func TestDecode_PassThrough(t *testing.T) {
	decoder := jsoncoder.CombineDecoders(jsoncoder.BoundsDecode, jsoncoder.ComplexDecode)

	tests := []struct {
		name string
		in   string
		want *jsoncoder.Object
	}{
		{
			"plain",
			`{"a":1,"b":[1,2],"c":{"d":true}}`,
			jsoncoder.ObjectOf("a", 1.0, "b", []any{1.0, 2.0}, "c", jsoncoder.ObjectOf("d", true)),
		},
		{
			"complex keys out of order",
			`{"real":1,"complex":true,"imag":2}`,
			jsoncoder.ObjectOf("real", 1.0, "complex", true, "imag", 2.0),
		},
		{
			"complex keys plus extra",
			`{"complex":true,"real":1,"imag":2,"extra":null}`,
			jsoncoder.ObjectOf("complex", true, "real", 1.0, "imag", 2.0, "extra", nil),
		},
		{
			"bounds missing key",
			`{"Bounds":true,"lb":1,"ub":10}`,
			jsoncoder.ObjectOf("Bounds", true, "lb", 1.0, "ub", 10.0),
		},
		{
			"complex with non-numeric parts",
			`{"complex":true,"real":"1","imag":2}`,
			jsoncoder.ObjectOf("complex", true, "real", "1", "imag", 2.0),
		},
		{
			"bounds with non-bool flag",
			`{"Bounds":true,"lb":1,"ub":10,"keep_feasible":"no"}`,
			jsoncoder.ObjectOf("Bounds", true, "lb", 1.0, "ub", 10.0, "keep_feasible", "no"),
		},
		{"empty", `{}`, jsoncoder.NewObject()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsoncoder.Unmarshal([]byte(tt.in), decoder)
			require.NoError(t, err)
			obj, ok := got.(*jsoncoder.Object)
			require.True(t, ok, "got %T", got)
			assert.True(t, tt.want.Equal(obj), "got %v", obj.Map())
		})
	}
}

func TestDecode_MarkerCollision(t *testing.T) {
	// An application object shaped like a marker is decoded as that kind.
	got, err := jsoncoder.Unmarshal([]byte(`{"complex":"yes","real":1,"imag":2}`), jsoncoder.ComplexDecode)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 2), got)
}

func TestDecode_InnermostFirst(t *testing.T) {
	var seen [][]string
	hook := func(obj *jsoncoder.Object) any {
		seen = append(seen, obj.Keys())
		return jsoncoder.ComplexDecode(obj)
	}

	got, err := jsoncoder.Unmarshal([]byte(`{"z":{"complex":true,"real":0,"imag":1},"n":2}`), hook)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"complex", "real", "imag"}, {"z", "n"}}, seen)

	obj := got.(*jsoncoder.Object)
	z, _ := obj.Get("z")
	assert.Equal(t, complex(0, 1), z)
}

func TestResultDecode(t *testing.T) {
	result := optimize.Result{
		"x":       ndarray.FromSlice([]float64{0.0009765625}),
		"fun":     ndarray.FromSlice([]float64{9.5367431640625e-07}),
		"success": true,
		"message": "The solution converged.",
		"nfev":    12.0,
	}

	data, err := jsoncoder.Marshal(result, jsoncoder.Numeric())
	require.NoError(t, err)

	res2, err := jsoncoder.Unmarshal(data, jsoncoder.ResultDecode)
	require.NoError(t, err)
	require.IsType(t, optimize.Result{}, res2)
	assert.True(t, result.Equal(res2.(optimize.Result)))
}

func TestResultDecode_ScalarX(t *testing.T) {
	got := jsoncoder.ResultDecode(jsoncoder.ObjectOf(
		"x", 0.5,
		"fun", 0.25,
		"status", 0.0,
		"names", []any{"a", "b"},
	))

	res := got.(optimize.Result)
	assert.Equal(t, 0, res.X().Ndim())
	assert.Equal(t, 0.5, res.X().At())
	assert.Equal(t, 0.25, res["fun"])
	assert.Equal(t, []any{"a", "b"}, res["names"])
}

func TestUnmarshal_UseNumber(t *testing.T) {
	c := jsoncoder.Default(jsoncoder.UseNumber())

	got, err := c.Unmarshal([]byte(`[{"complex":true,"real":1.5,"imag":2},7]`))
	require.NoError(t, err)
	assert.Equal(t, []any{complex(1.5, 2), json.Number("7")}, got)
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := jsoncoder.Unmarshal([]byte(`1 2`), nil)
	assert.ErrorIs(t, err, jsoncoder.ErrTrailingData)

	_, err = jsoncoder.Unmarshal([]byte(``), nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = jsoncoder.Unmarshal([]byte(`{"a":`), nil)
	assert.Error(t, err)

	_, err = jsoncoder.Unmarshal([]byte(`{"a" 1}`), nil)
	assert.Error(t, err)

	c := jsoncoder.New(jsoncoder.WithMaxDepth(2))
	_, err = c.Unmarshal([]byte(`[[1]]`))
	assert.NoError(t, err)
	_, err = c.Unmarshal([]byte(`[[[1]]]`))
	assert.ErrorIs(t, err, jsoncoder.ErrMaxDepth)
}

func TestUnmarshal_Scalars(t *testing.T) {
	got, err := jsoncoder.Unmarshal([]byte(` [null, true, "s", 1.5, []] `), nil)
	require.NoError(t, err)
	assert.Equal(t, []any{nil, true, "s", 1.5, []any{}}, got)
}

func TestBoundsDecode_Empty(t *testing.T) {
	data, err := jsoncoder.Marshal(optimize.Bounds{}, jsoncoder.BoundsEncoder())
	require.NoError(t, err)
	assert.Equal(t, `{"Bounds":true,"lb":null,"ub":null,"keep_feasible":null}`, string(data))

	got, err := jsoncoder.Unmarshal(data, jsoncoder.BoundsDecode)
	require.NoError(t, err)
	require.IsType(t, &optimize.Bounds{}, got)
	assert.True(t, (&optimize.Bounds{}).Equal(got.(*optimize.Bounds)))
}
