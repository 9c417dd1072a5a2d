package model

import (
	"fmt"
)

// NoDocument is a persisted record that a document does not exist as of
// a version.
type NoDocument struct {
	maybeDocument
	hasCommittedMutations bool
}

// NewNoDocument creates an absence record. hasCommittedMutations marks
// an absence produced by an acknowledged delete that a snapshot has not
// yet confirmed.
func NewNoDocument(key DocumentKey, version SnapshotVersion, hasCommittedMutations bool) *NoDocument {
	return &NoDocument{
		maybeDocument:         maybeDocument{key: key, version: version},
		hasCommittedMutations: hasCommittedMutations,
	}
}

// HasCommittedMutations reports whether the absence stems from an
// acknowledged but unconfirmed delete.
func (d *NoDocument) HasCommittedMutations() bool {
	return d.hasCommittedMutations
}

// HasPendingWrites reports whether any local write is still in flight
// for this document.
func (d *NoDocument) HasPendingWrites() bool {
	return d.hasCommittedMutations
}

// Equal reports whether both records mark the same absence.
func (d *NoDocument) Equal(other *NoDocument) bool {
	return d.version.Equal(other.version) &&
		d.key.Equal(other.key) &&
		d.hasCommittedMutations == other.hasCommittedMutations
}

// String formats the record for debugging.
func (d *NoDocument) String() string {
	return fmt.Sprintf("NoDocument(key=%s, version=%s, committed=%t)",
		d.key, d.version, d.hasCommittedMutations)
}
