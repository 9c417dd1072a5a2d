package model

import (
	"fmt"
)

// UnknownDocument records that a write to the document was acknowledged
// at a version without the resulting contents ever arriving. It always
// has pending writes: the client must reach the server again before it
// can show the document.
type UnknownDocument struct {
	maybeDocument
}

// NewUnknownDocument creates an unknown-contents record.
func NewUnknownDocument(key DocumentKey, version SnapshotVersion) *UnknownDocument {
	return &UnknownDocument{
		maybeDocument: maybeDocument{key: key, version: version},
	}
}

// HasPendingWrites always reports true for unknown contents.
func (d *UnknownDocument) HasPendingWrites() bool {
	return true
}

// Equal reports whether both records mark the same unknown state.
func (d *UnknownDocument) Equal(other *UnknownDocument) bool {
	return d.version.Equal(other.version) && d.key.Equal(other.key)
}

// String formats the record for debugging.
func (d *UnknownDocument) String() string {
	return fmt.Sprintf("UnknownDocument(key=%s, version=%s)", d.key, d.version)
}
