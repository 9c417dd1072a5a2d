package model

import (
	"fmt"
)

// DocumentState describes how a document's local value relates to what
// the server has acknowledged.
type DocumentState int

const (
	// DocumentStateLocalMutations marks a value with local changes the
	// server has not yet acknowledged.
	DocumentStateLocalMutations DocumentState = iota
	// DocumentStateCommittedMutations marks a value whose changes the
	// server acknowledged but has not yet confirmed in a snapshot.
	DocumentStateCommittedMutations
	// DocumentStateSynced marks a value with no outstanding changes.
	DocumentStateSynced
)

// String returns the state's name.
func (s DocumentState) String() string {
	switch s {
	case DocumentStateLocalMutations:
		return "local-mutations"
	case DocumentStateCommittedMutations:
		return "committed-mutations"
	case DocumentStateSynced:
		return "synced"
	default:
		panic(fmt.Sprintf("model: unhandled document state %d", int(s)))
	}
}

// Document is a document known to exist, together with its contents at
// a version and the sync state of those contents.
type Document struct {
	maybeDocument
	data  ObjectValue
	state DocumentState
}

// NewDocument creates a document, taking ownership of data. Passing a
// state outside the declared constants is a programming error and
// panics.
func NewDocument(data ObjectValue, key DocumentKey, version SnapshotVersion, state DocumentState) *Document {
	switch state {
	case DocumentStateLocalMutations, DocumentStateCommittedMutations, DocumentStateSynced:
	default:
		panic(fmt.Sprintf("model: invalid document state %d", int(state)))
	}
	return &Document{
		maybeDocument: maybeDocument{key: key, version: version},
		data:          data,
		state:         state,
	}
}

// Data returns the document's contents.
func (d *Document) Data() ObjectValue {
	return d.data
}

// Field returns the value at path within the contents, and whether the
// path is present.
func (d *Document) Field(path FieldPath) (FieldValue, bool) {
	return d.data.Get(path)
}

// State returns the sync state of the contents.
func (d *Document) State() DocumentState {
	return d.state
}

// HasLocalMutations reports whether the contents include changes the
// server has not acknowledged.
func (d *Document) HasLocalMutations() bool {
	return d.state == DocumentStateLocalMutations
}

// HasCommittedMutations reports whether the contents include changes
// the server acknowledged but has not confirmed in a snapshot.
func (d *Document) HasCommittedMutations() bool {
	return d.state == DocumentStateCommittedMutations
}

// HasPendingWrites reports whether any local write is still in flight
// for this document.
func (d *Document) HasPendingWrites() bool {
	return d.state != DocumentStateSynced
}

// Equal reports whether both documents carry the same key, version and
// contents. Of the sync state, only whether local mutations are pending
// participates: a committed-mutations document and a synced document
// with the same contents are equal even though their HasPendingWrites
// results differ.
func (d *Document) Equal(other *Document) bool {
	return d.version.Equal(other.version) &&
		d.key.Equal(other.key) &&
		d.HasLocalMutations() == other.HasLocalMutations() &&
		d.data.Equal(other.data)
}

// String formats the document for debugging.
func (d *Document) String() string {
	return fmt.Sprintf("Document(key=%s, version=%s, state=%s, data=%s)",
		d.key, d.version, d.state, d.data)
}
