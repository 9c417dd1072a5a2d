package model

import (
	"fmt"
	"strings"
)

// DefaultDatabaseID is the database name used when a project does not
// name one explicitly.
const DefaultDatabaseID = "(default)"

// DatabaseID identifies a database within a project.
type DatabaseID struct {
	project  string
	database string
}

// NewDatabaseID creates a database identity. An empty database name
// selects the project's default database.
func NewDatabaseID(project, database string) DatabaseID {
	if database == "" {
		database = DefaultDatabaseID
	}
	return DatabaseID{project: project, database: database}
}

// Project returns the project id.
func (d DatabaseID) Project() string {
	return d.project
}

// Database returns the database name within the project.
func (d DatabaseID) Database() string {
	return d.database
}

// IsDefault reports whether this is the project's default database.
func (d DatabaseID) IsDefault() bool {
	return d.database == DefaultDatabaseID
}

// Compare orders database identities by project, then database name.
func (d DatabaseID) Compare(other DatabaseID) int {
	if c := strings.Compare(d.project, other.project); c != 0 {
		return c
	}
	return strings.Compare(d.database, other.database)
}

// Equal reports whether both identities name the same database.
func (d DatabaseID) Equal(other DatabaseID) bool {
	return d.project == other.project && d.database == other.database
}

// String returns the fully qualified database name.
func (d DatabaseID) String() string {
	return fmt.Sprintf("projects/%s/databases/%s", d.project, d.database)
}
