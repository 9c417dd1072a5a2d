package model

import (
	"fmt"
)

// Reference points at a document, possibly in another database.
type Reference struct {
	Database DatabaseID
	Key      DocumentKey
}

// Compare orders references by database, then document key.
func (r Reference) Compare(other Reference) int {
	if c := r.Database.Compare(other.Database); c != 0 {
		return c
	}
	return r.Key.Compare(other.Key)
}

// Equal reports whether both references point at the same document in
// the same database.
func (r Reference) Equal(other Reference) bool {
	return r.Database.Equal(other.Database) && r.Key.Equal(other.Key)
}

// String returns the fully qualified document name.
func (r Reference) String() string {
	return fmt.Sprintf("%s/documents/%s", r.Database.String(), r.Key.String())
}
