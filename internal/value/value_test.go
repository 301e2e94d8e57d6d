package value

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonfmt/internal/errors"
)

func assertTypeMismatch(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "error should be an *AppError, got %T", err)
	assert.Equal(t, errors.ErrorTypeTypeMismatch, appErr.Type)
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Null, "null"},
		{String, "string"},
		{Number, "number"},
		{Bool, "bool"},
		{Array, "array"},
		{Object, "object"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestConstructors_Kind(t *testing.T) {
	assert.Equal(t, Null, NewNull().Kind())
	assert.Equal(t, String, NewString("x").Kind())
	assert.Equal(t, Number, NewNumber(1).Kind())
	assert.Equal(t, Bool, NewBool(true).Kind())
	assert.Equal(t, Array, NewArray().Kind())
	assert.Equal(t, Object, NewObject().Kind())
}

func TestAccessors_MatchingVariant(t *testing.T) {
	s, err := NewString("hello").StringValue()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	f, err := NewNumber(3.14).Float64()
	require.NoError(t, err)
	assert.Equal(t, 3.14, f)

	b, err := NewBool(true).Bool()
	require.NoError(t, err)
	assert.True(t, b)

	arr, err := NewArray().Array()
	require.NoError(t, err)
	assert.Empty(t, arr)

	obj, err := NewObject().Object()
	require.NoError(t, err)
	assert.Empty(t, obj)
}

func TestAccessors_WrongVariant(t *testing.T) {
	// A boolean value answers the string accessor with a type mismatch but
	// still hands out its own payload.
	v := NewBool(true)

	_, err := v.StringValue()
	assertTypeMismatch(t, err)
	assert.Contains(t, err.Error(), "value is bool, not string")

	b, err := v.Bool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestNull_AnswersEveryAccessorWithMismatch(t *testing.T) {
	v := NewNull()

	_, err := v.StringValue()
	assertTypeMismatch(t, err)
	_, err = v.Float64()
	assertTypeMismatch(t, err)
	_, err = v.Bool()
	assertTypeMismatch(t, err)
	_, err = v.Array()
	assertTypeMismatch(t, err)
	_, err = v.Object()
	assertTypeMismatch(t, err)
}

func TestNilValue_BehavesLikeNull(t *testing.T) {
	var v *Value

	assert.Equal(t, Null, v.Kind())
	assert.Equal(t, 0, v.Len())

	_, err := v.StringValue()
	assertTypeMismatch(t, err)
	_, err = v.Object()
	assertTypeMismatch(t, err)
	err = v.Append(NewNull())
	assertTypeMismatch(t, err)
}

func TestSetters_InPlace(t *testing.T) {
	s := NewString("before")
	require.NoError(t, s.SetString("after"))
	got, err := s.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "after", got)

	n := NewNumber(1)
	require.NoError(t, n.SetFloat64(2.5))
	f, err := n.Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	b := NewBool(false)
	require.NoError(t, b.SetBool(true))
	bv, err := b.Bool()
	require.NoError(t, err)
	assert.True(t, bv)
}

func TestSetters_WrongVariant(t *testing.T) {
	v := NewNumber(1)

	assertTypeMismatch(t, v.SetString("x"))
	assertTypeMismatch(t, v.SetBool(true))
	assertTypeMismatch(t, NewString("x").SetFloat64(1))
}

func TestArray_Append(t *testing.T) {
	arr := NewArray()
	require.NoError(t, arr.Append(NewNumber(1), NewNumber(2)))
	require.NoError(t, arr.Append(NewObject()))

	elems, err := arr.Array()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	assert.Equal(t, Number, elems[0].Kind())
	assert.Equal(t, Object, elems[2].Kind())
	assert.Equal(t, 3, arr.Len())
}

func TestObject_SetLastWriteWins(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("a", NewNumber(1)))
	require.NoError(t, obj.Set("a", NewNumber(2)))

	members, err := obj.Object()
	require.NoError(t, err)
	require.Len(t, members, 1)

	f, err := members["a"].Float64()
	require.NoError(t, err)
	assert.Equal(t, float64(2), f)
}

func TestObject_MapIsLivePayload(t *testing.T) {
	obj := NewObject()
	members, err := obj.Object()
	require.NoError(t, err)

	// Writes through the returned map mutate the value itself.
	members["direct"] = NewBool(true)
	assert.Equal(t, 1, obj.Len())
}

func TestVariantNeverChanges(t *testing.T) {
	v := NewString("s")
	assertTypeMismatch(t, v.Append(NewNull()))
	assertTypeMismatch(t, v.Set("k", NewNull()))
	assert.Equal(t, String, v.Kind())
}
