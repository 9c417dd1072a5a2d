package model

import (
	"sort"
)

// documentEntry pairs a key with a document known to exist.
type documentEntry struct {
	key DocumentKey
	doc *Document
}

// DocumentMap is an immutable map from document key to an existing
// document, sorted by key. It is the shape of collection scan results.
// The zero value is the empty map.
type DocumentMap struct {
	entries []documentEntry
}

// NewDocumentMap creates a map holding the given documents, each keyed
// by its own document key. Later entries for the same key win.
func NewDocumentMap(docs ...*Document) DocumentMap {
	m := DocumentMap{}
	for _, doc := range docs {
		m = m.Insert(doc)
	}
	return m
}

// Len returns the number of entries.
func (m DocumentMap) Len() int {
	return len(m.entries)
}

// Empty reports whether the map has no entries.
func (m DocumentMap) Empty() bool {
	return len(m.entries) == 0
}

func (m DocumentMap) entryIndex(key DocumentKey) (int, bool) {
	i := sort.Search(len(m.entries), func(j int) bool {
		return m.entries[j].key.Compare(key) >= 0
	})
	if i < len(m.entries) && m.entries[i].key.Equal(key) {
		return i, true
	}
	return i, false
}

// Get returns the document for key and whether it is present.
func (m DocumentMap) Get(key DocumentKey) (*Document, bool) {
	if i, ok := m.entryIndex(key); ok {
		return m.entries[i].doc, true
	}
	return nil, false
}

// Insert returns a map that also holds doc, keyed by doc.Key(). An
// existing entry for the same key is replaced.
func (m DocumentMap) Insert(doc *Document) DocumentMap {
	key := doc.Key()
	i, found := m.entryIndex(key)
	entries := make([]documentEntry, 0, len(m.entries)+1)
	entries = append(entries, m.entries[:i]...)
	entries = append(entries, documentEntry{key: key, doc: doc})
	if found {
		entries = append(entries, m.entries[i+1:]...)
	} else {
		entries = append(entries, m.entries[i:]...)
	}
	return DocumentMap{entries: entries}
}

// ForEach visits the entries in key order.
func (m DocumentMap) ForEach(fn func(key DocumentKey, doc *Document)) {
	for _, e := range m.entries {
		fn(e.key, e.doc)
	}
}

// Keys returns the set of keys with entries.
func (m DocumentMap) Keys() DocumentKeySet {
	keys := make([]DocumentKey, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return DocumentKeySet{keys: keys}
}

// Equal reports whether both maps hold equal documents for the same
// keys.
func (m DocumentMap) Equal(other DocumentMap) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for i, e := range m.entries {
		o := other.entries[i]
		if !e.key.Equal(o.key) || !e.doc.Equal(o.doc) {
			return false
		}
	}
	return true
}
