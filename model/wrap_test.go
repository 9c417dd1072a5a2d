package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	instant := time.Unix(100, 5)
	key := mustParseKey(t, "users/alice")

	cases := []struct {
		input  any
		expect FieldValue
	}{
		{nil, Null},
		{true, NewBoolean(true)},
		{42, NewInteger(42)},
		{int32(7), NewInteger(7)},
		{int64(-9), NewInteger(-9)},
		{uint32(7), NewInteger(7)},
		{uint64(7), NewInteger(7)},
		{3.5, NewDouble(3.5)},
		{float32(0.5), NewDouble(0.5)},
		{"hello", NewString("hello")},
		{[]byte{1, 2}, NewBlob([]byte{1, 2})},
		{instant, NewTimestamp(instant)},
		{GeoPoint{Latitude: 1, Longitude: 2}, NewGeoPoint(GeoPoint{Latitude: 1, Longitude: 2})},
		{Reference{Database: NewDatabaseID("p", ""), Key: key}, NewReference(Reference{Database: NewDatabaseID("p", ""), Key: key})},
		{[]any{int64(1), "x"}, NewArray(NewInteger(1), NewString("x"))},
		{map[string]any{"a": int64(1)}, NewObject(NewObjectValue(map[string]FieldValue{"a": NewInteger(1)}))},
		{NewString("passthrough"), NewString("passthrough")},
	}
	for _, tc := range cases {
		actual, err := Wrap(tc.input)
		require.NoError(t, err)
		assert.True(t, tc.expect.Equal(actual), "%v: expected %s, got %s", tc.input, tc.expect, actual)
	}
}

func TestWrapNested(t *testing.T) {
	object, err := WrapObject(map[string]any{
		"user": map[string]any{
			"name": "Bob",
			"tags": []any{"a", "b"},
		},
		"count": 3,
	})
	require.NoError(t, err)

	path, err := ParseFieldPath("user.tags")
	require.NoError(t, err)
	value, ok := object.Get(path)
	require.True(t, ok)
	assert.True(t, value.Equal(NewArray(NewString("a"), NewString("b"))))
}

func TestWrapErrors(t *testing.T) {
	_, err := Wrap(struct{}{})
	assert.Error(t, err)

	_, err = Wrap(uint64(math.MaxUint64))
	assert.Error(t, err)

	_, err = Wrap(GeoPoint{Latitude: 91, Longitude: 0})
	assert.Error(t, err)

	_, err = Wrap(GeoPoint{Latitude: 0, Longitude: -181})
	assert.Error(t, err)

	_, err = Wrap(GeoPoint{Latitude: math.NaN(), Longitude: 0})
	assert.Error(t, err)

	_, err = Wrap([]any{"ok", struct{}{}})
	assert.Error(t, err)

	_, err = WrapObject(map[string]any{"bad": struct{}{}})
	assert.Error(t, err)
}
