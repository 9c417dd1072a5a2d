package test

import (
	"embed"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed cases
var casesFS embed.FS

type TestCase struct {
	// Description is a simple description for the test case.
	Description string
	// Documents is the set of documents loaded into the cache.
	Documents []TestCaseDocument
	// Collections lists the expected contents of collections.
	Collections []TestCaseCollection
	// Lookups lists the expected field values of cached documents.
	Lookups []TestCaseLookup
}

type TestCaseDocument struct {
	// Key is the full path of the document.
	Key string
	// Type selects the variant: document, no-document, or unknown-document.
	Type string
	// Version is the snapshot version in seconds since the epoch.
	Version int64
	// State is the sync state: synced, local-mutations, or committed-mutations.
	State string
	// Committed reports whether a deleted document has committed mutations.
	Committed bool
	// Fields contains the document contents.
	Fields map[string]any
}

type TestCaseCollection struct {
	// Path is the collection path to read.
	Path string
	// Keys lists the documents expected in the collection.
	Keys []string
}

type TestCaseLookup struct {
	// Key is the full path of the document to read.
	Key string
	// Path is the field path to look up.
	Path string
	// Value is the expected field value.
	Value any
	// Absent reports whether the field should be missing.
	Absent bool
}

// TestCasePaths returns a list of all test case file paths.
func TestCasePaths() (paths []string, _ error) {
	return paths, fs.WalkDir(casesFS, "cases", func(path string, d fs.DirEntry, err error) error {
		if filepath.Ext(path) == ".yaml" {
			paths = append(paths, path)
		}
		return err
	})
}

// LoadTestCase loads and parses a test case file.
func LoadTestCase(path string) (*TestCase, error) {
	data, err := fs.ReadFile(casesFS, path)
	if err != nil {
		return nil, err
	}
	var testCase TestCase
	if err := yaml.Unmarshal(data, &testCase); err != nil {
		return nil, err
	}
	return &testCase, nil
}
