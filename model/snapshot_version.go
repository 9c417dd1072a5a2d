package model

import (
	"time"
)

// SnapshotVersion marks the point in the server's history that a piece
// of data reflects. Versions are totally ordered and only comparable for
// the same document.
type SnapshotVersion struct {
	timestamp time.Time
}

// NoVersion is the version of data whose point in history is unknown.
// It orders before every real version.
var NoVersion = SnapshotVersion{}

// NewSnapshotVersion creates a version from a server timestamp.
func NewSnapshotVersion(timestamp time.Time) SnapshotVersion {
	return SnapshotVersion{timestamp: timestamp.UTC()}
}

// Timestamp returns the server timestamp the version was created from.
func (v SnapshotVersion) Timestamp() time.Time {
	return v.timestamp
}

// Compare orders versions by their timestamps.
func (v SnapshotVersion) Compare(other SnapshotVersion) int {
	return v.timestamp.Compare(other.timestamp)
}

// Equal reports whether both versions mark the same point in history.
func (v SnapshotVersion) Equal(other SnapshotVersion) bool {
	return v.timestamp.Equal(other.timestamp)
}

// String formats the version's timestamp for debugging.
func (v SnapshotVersion) String() string {
	if v.Equal(NoVersion) {
		return "no-version"
	}
	return v.timestamp.UTC().Format(time.RFC3339Nano)
}
