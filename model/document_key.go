package model

import (
	"fmt"

	"github.com/google/uuid"
)

// DocumentKey is the identity of a document: a resource path with an
// even number of segments, alternating collection id and document id.
type DocumentKey struct {
	path ResourcePath
}

// NewDocumentKey creates a key from a resource path. The path must
// contain an even number of segments; passing an odd-length path is a
// programming error and panics.
func NewDocumentKey(path ResourcePath) DocumentKey {
	if !IsDocumentKey(path) {
		panic(fmt.Sprintf("model: document key must have an even number of segments: %q", path.String()))
	}
	return DocumentKey{path: path}
}

// ParseDocumentKey parses a slash-separated document path, returning
// ErrInvalidPath if the path is malformed or does not name a document.
func ParseDocumentKey(path string) (DocumentKey, error) {
	p, err := ParseResourcePath(path)
	if err != nil {
		return DocumentKey{}, err
	}
	if !IsDocumentKey(p) {
		return DocumentKey{}, fmt.Errorf("%w: document key must have an even number of segments: %q", ErrInvalidPath, path)
	}
	return DocumentKey{path: p}, nil
}

// IsDocumentKey reports whether the path names a document rather than a
// collection.
func IsDocumentKey(path ResourcePath) bool {
	return path.Len()%2 == 0
}

// AutoID returns a random unique document id suitable for creating
// documents without a caller-chosen name.
func AutoID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Path returns the full resource path of the document.
func (k DocumentKey) Path() ResourcePath {
	return k.path
}

// CollectionID returns the id of the collection the document belongs to,
// the second to last path segment.
func (k DocumentKey) CollectionID() string {
	return k.path.Segment(k.path.Len() - 2)
}

// CollectionPath returns the path of the collection the document belongs
// to.
func (k DocumentKey) CollectionPath() ResourcePath {
	return k.path.PopLast()
}

// DocumentID returns the last path segment, the document's id within its
// collection.
func (k DocumentKey) DocumentID() string {
	return k.path.LastSegment()
}

// HasCollectionID reports whether the document sits directly in a
// collection with the given id.
func (k DocumentKey) HasCollectionID(collectionID string) bool {
	return k.path.Len() >= 2 && k.CollectionID() == collectionID
}

// Compare orders keys by their resource paths.
func (k DocumentKey) Compare(other DocumentKey) int {
	return k.path.Compare(other.path)
}

// Equal reports whether both keys name the same document.
func (k DocumentKey) Equal(other DocumentKey) bool {
	return k.path.Equal(other.path)
}

// String returns the slash-separated document path.
func (k DocumentKey) String() string {
	return k.path.String()
}
