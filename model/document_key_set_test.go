package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentKeySet(t *testing.T) {
	alice := mustParseKey(t, "users/alice")
	bob := mustParseKey(t, "users/bob")
	carol := mustParseKey(t, "users/carol")

	set := NewDocumentKeySet(bob, alice)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(alice))
	assert.True(t, set.Contains(bob))
	assert.False(t, set.Contains(carol))

	// Keys come back sorted regardless of insertion order.
	assert.Equal(t, []DocumentKey{alice, bob}, set.Keys())
}

func TestDocumentKeySetInsert(t *testing.T) {
	alice := mustParseKey(t, "users/alice")
	bob := mustParseKey(t, "users/bob")

	empty := DocumentKeySet{}
	assert.True(t, empty.Empty())

	one := empty.Insert(alice)
	two := one.Insert(bob)
	again := two.Insert(bob)

	// Deriving never modifies the receiver.
	assert.True(t, empty.Empty())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())
	assert.True(t, two.Equal(again))
}

func TestDocumentKeySetDelete(t *testing.T) {
	alice := mustParseKey(t, "users/alice")
	bob := mustParseKey(t, "users/bob")

	set := NewDocumentKeySet(alice, bob)
	smaller := set.Delete(alice)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, 1, smaller.Len())
	assert.False(t, smaller.Contains(alice))

	unchanged := smaller.Delete(alice)
	assert.True(t, unchanged.Equal(smaller))
}

func TestDocumentKeySetForEach(t *testing.T) {
	alice := mustParseKey(t, "users/alice")
	bob := mustParseKey(t, "users/bob")

	set := NewDocumentKeySet(bob, alice)

	var visited []string
	set.ForEach(func(key DocumentKey) {
		visited = append(visited, key.String())
	})
	assert.Equal(t, []string{"users/alice", "users/bob"}, visited)
}
