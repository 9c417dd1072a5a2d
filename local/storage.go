package local

import (
	"errors"

	"github.com/ipld/go-ipld-prime/storage"
)

// ErrNotFound is returned when a document key has no cached entry.
var ErrNotFound = errors.New("document not found")

// Storage is the block storage a document cache keeps encoded documents
// in. Any go-ipld-prime storage that can read and write blocks works.
type Storage interface {
	storage.ReadableStorage
	storage.WritableStorage
}
