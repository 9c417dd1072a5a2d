// Package model defines the versioned document representation shared by
// the local store and the sync layers: paths and keys naming documents,
// the value system stored inside them, and the document variants that
// record what the client knows about a document at a version.
//
// Everything in this package is immutable. Deriving operations return
// new values, so documents, objects and collections can be shared
// across goroutines without locking once built.
package model
