package model

import (
	"sort"
	"strings"
)

// DocumentKeySet is an immutable sorted set of document keys. The zero
// value is the empty set. Insert and Delete return new sets and never
// modify the receiver, so a set can be shared freely once built.
type DocumentKeySet struct {
	keys []DocumentKey
}

// NewDocumentKeySet creates a set holding the given keys.
func NewDocumentKeySet(keys ...DocumentKey) DocumentKeySet {
	s := DocumentKeySet{}
	for _, key := range keys {
		s = s.Insert(key)
	}
	return s
}

// Len returns the number of keys in the set.
func (s DocumentKeySet) Len() int {
	return len(s.keys)
}

// Empty reports whether the set has no keys.
func (s DocumentKeySet) Empty() bool {
	return len(s.keys) == 0
}

// keyIndex locates key in the sorted slice, returning its index and
// whether it is present.
func (s DocumentKeySet) keyIndex(key DocumentKey) (int, bool) {
	i := sort.Search(len(s.keys), func(j int) bool {
		return s.keys[j].Compare(key) >= 0
	})
	if i < len(s.keys) && s.keys[i].Equal(key) {
		return i, true
	}
	return i, false
}

// Contains reports whether key is in the set.
func (s DocumentKeySet) Contains(key DocumentKey) bool {
	_, ok := s.keyIndex(key)
	return ok
}

// Insert returns a set that also contains key. Inserting a present key
// returns the receiver unchanged.
func (s DocumentKeySet) Insert(key DocumentKey) DocumentKeySet {
	i, found := s.keyIndex(key)
	if found {
		return s
	}
	keys := make([]DocumentKey, 0, len(s.keys)+1)
	keys = append(keys, s.keys[:i]...)
	keys = append(keys, key)
	keys = append(keys, s.keys[i:]...)
	return DocumentKeySet{keys: keys}
}

// Delete returns a set without key. Deleting an absent key returns the
// receiver unchanged.
func (s DocumentKeySet) Delete(key DocumentKey) DocumentKeySet {
	i, found := s.keyIndex(key)
	if !found {
		return s
	}
	keys := make([]DocumentKey, 0, len(s.keys)-1)
	keys = append(keys, s.keys[:i]...)
	keys = append(keys, s.keys[i+1:]...)
	return DocumentKeySet{keys: keys}
}

// ForEach visits the keys in sorted order.
func (s DocumentKeySet) ForEach(fn func(key DocumentKey)) {
	for _, key := range s.keys {
		fn(key)
	}
}

// Keys returns the keys in sorted order as a fresh slice.
func (s DocumentKeySet) Keys() []DocumentKey {
	keys := make([]DocumentKey, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Equal reports whether both sets hold the same keys.
func (s DocumentKeySet) Equal(other DocumentKeySet) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for i, key := range s.keys {
		if !key.Equal(other.keys[i]) {
			return false
		}
	}
	return true
}

// String formats the set for debugging.
func (s DocumentKeySet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key.String())
	}
	b.WriteByte('}')
	return b.String()
}
