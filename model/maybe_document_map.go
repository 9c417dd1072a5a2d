package model

import (
	"sort"
)

// maybeDocumentEntry pairs a key with what is known about its document.
type maybeDocumentEntry struct {
	key DocumentKey
	doc MaybeDocument
}

// MaybeDocumentMap is an immutable map from document key to the
// client's knowledge of that document, sorted by key. The zero value is
// the empty map. Insert and Delete return new maps and never modify the
// receiver.
type MaybeDocumentMap struct {
	entries []maybeDocumentEntry
}

// NewMaybeDocumentMap creates a map holding the given entries, each
// keyed by its own document key. Later entries for the same key win.
func NewMaybeDocumentMap(docs ...MaybeDocument) MaybeDocumentMap {
	m := MaybeDocumentMap{}
	for _, doc := range docs {
		m = m.Insert(doc)
	}
	return m
}

// Len returns the number of entries.
func (m MaybeDocumentMap) Len() int {
	return len(m.entries)
}

// Empty reports whether the map has no entries.
func (m MaybeDocumentMap) Empty() bool {
	return len(m.entries) == 0
}

func (m MaybeDocumentMap) entryIndex(key DocumentKey) (int, bool) {
	i := sort.Search(len(m.entries), func(j int) bool {
		return m.entries[j].key.Compare(key) >= 0
	})
	if i < len(m.entries) && m.entries[i].key.Equal(key) {
		return i, true
	}
	return i, false
}

// Get returns the entry for key and whether it is present.
func (m MaybeDocumentMap) Get(key DocumentKey) (MaybeDocument, bool) {
	if i, ok := m.entryIndex(key); ok {
		return m.entries[i].doc, true
	}
	return nil, false
}

// Insert returns a map that also holds doc, keyed by doc.Key(). An
// existing entry for the same key is replaced.
func (m MaybeDocumentMap) Insert(doc MaybeDocument) MaybeDocumentMap {
	key := doc.Key()
	i, found := m.entryIndex(key)
	entries := make([]maybeDocumentEntry, 0, len(m.entries)+1)
	entries = append(entries, m.entries[:i]...)
	entries = append(entries, maybeDocumentEntry{key: key, doc: doc})
	if found {
		entries = append(entries, m.entries[i+1:]...)
	} else {
		entries = append(entries, m.entries[i:]...)
	}
	return MaybeDocumentMap{entries: entries}
}

// Delete returns a map without an entry for key. Deleting an absent key
// returns the receiver unchanged.
func (m MaybeDocumentMap) Delete(key DocumentKey) MaybeDocumentMap {
	i, found := m.entryIndex(key)
	if !found {
		return m
	}
	entries := make([]maybeDocumentEntry, 0, len(m.entries)-1)
	entries = append(entries, m.entries[:i]...)
	entries = append(entries, m.entries[i+1:]...)
	return MaybeDocumentMap{entries: entries}
}

// ForEach visits the entries in key order.
func (m MaybeDocumentMap) ForEach(fn func(key DocumentKey, doc MaybeDocument)) {
	for _, e := range m.entries {
		fn(e.key, e.doc)
	}
}

// Keys returns the set of keys with entries.
func (m MaybeDocumentMap) Keys() DocumentKeySet {
	keys := make([]DocumentKey, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return DocumentKeySet{keys: keys}
}

// Equal reports whether both maps hold equal entries for the same keys.
// Entries of different variants are never equal.
func (m MaybeDocumentMap) Equal(other MaybeDocumentMap) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for i, e := range m.entries {
		o := other.entries[i]
		if !e.key.Equal(o.key) || !equalMaybeDocuments(e.doc, o.doc) {
			return false
		}
	}
	return true
}
