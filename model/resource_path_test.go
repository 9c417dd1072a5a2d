package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourcePath(t *testing.T) {
	path, err := ParseResourcePath("rooms/eros/messages/1")
	require.NoError(t, err)

	require.Equal(t, 4, path.Len())
	assert.Equal(t, "rooms", path.Segment(0))
	assert.Equal(t, "1", path.Segment(3))
	assert.Equal(t, "rooms/eros/messages/1", path.String())
}

func TestParseResourcePathSlashes(t *testing.T) {
	path, err := ParseResourcePath("/rooms/eros/")
	require.NoError(t, err)
	assert.Equal(t, "rooms/eros", path.String())

	empty, err := ParseResourcePath("")
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.Equal(t, "", empty.String())

	_, err = ParseResourcePath("rooms//eros")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestResourcePathDerive(t *testing.T) {
	path := NewResourcePath("rooms", "eros")

	longer := path.Append("messages")
	assert.Equal(t, "rooms/eros/messages", longer.String())
	assert.Equal(t, 2, path.Len())

	shorter := longer.PopLast()
	assert.Equal(t, "rooms/eros", shorter.String())

	rest := longer.PopFirst()
	assert.Equal(t, "eros/messages", rest.String())
	assert.Equal(t, "rooms", longer.FirstSegment())
	assert.Equal(t, "messages", longer.LastSegment())
}

func TestResourcePathCompare(t *testing.T) {
	a, err := ParseResourcePath("a")
	require.NoError(t, err)
	ab, err := ParseResourcePath("a/b")
	require.NoError(t, err)
	b, err := ParseResourcePath("b")
	require.NoError(t, err)

	assert.Equal(t, -1, EmptyResourcePath().Compare(a))
	assert.Equal(t, -1, a.Compare(ab))
	assert.Equal(t, -1, ab.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, ab.Compare(ab))
}

func TestResourcePathIsPrefixOf(t *testing.T) {
	a, err := ParseResourcePath("a")
	require.NoError(t, err)
	ab, err := ParseResourcePath("a/b")
	require.NoError(t, err)

	assert.True(t, EmptyResourcePath().IsPrefixOf(a))
	assert.True(t, a.IsPrefixOf(ab))
	assert.True(t, ab.IsPrefixOf(ab))
	assert.False(t, ab.IsPrefixOf(a))
}
