package model

import (
	"fmt"
)

// MaybeDocument is what the client knows about a document: its contents
// at a version (Document), a persisted record of its absence
// (NoDocument), or an acknowledged write whose resulting contents never
// arrived (UnknownDocument).
//
// The set of implementations is closed; consumers may type switch over
// the three variants exhaustively.
type MaybeDocument interface {
	// Key returns the identity of the document.
	Key() DocumentKey
	// Version returns the point in the server's history the knowledge
	// reflects.
	Version() SnapshotVersion
	// HasPendingWrites reports whether local writes may not yet be
	// reflected in this knowledge.
	HasPendingWrites() bool

	isMaybeDocument()
}

// maybeDocument carries the identity and version shared by every
// variant.
type maybeDocument struct {
	key     DocumentKey
	version SnapshotVersion
}

func (d maybeDocument) Key() DocumentKey {
	return d.key
}

func (d maybeDocument) Version() SnapshotVersion {
	return d.version
}

func (d maybeDocument) isMaybeDocument() {}

// equalMaybeDocuments compares two entries of any variant. Entries of
// different variants are never equal.
func equalMaybeDocuments(a, b MaybeDocument) bool {
	switch at := a.(type) {
	case *Document:
		bt, ok := b.(*Document)
		return ok && at.Equal(bt)
	case *NoDocument:
		bt, ok := b.(*NoDocument)
		return ok && at.Equal(bt)
	case *UnknownDocument:
		bt, ok := b.(*UnknownDocument)
		return ok && at.Equal(bt)
	default:
		panic(fmt.Sprintf("model: unhandled document variant %T", a))
	}
}
