package model

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/lookup_cases.yaml
var lookupCasesYAML []byte

type lookupCaseFile struct {
	Cases []lookupCase
}

type lookupCase struct {
	// Name is a simple description for the test case.
	Name string
	// Document contains the top-level fields of the document.
	Document map[string]any
	// Lookups lists field paths with their expected outcomes.
	Lookups []lookupEntry
}

type lookupEntry struct {
	Path   string
	Value  any
	Absent bool
}

func TestObjectValueGetCases(t *testing.T) {
	var file lookupCaseFile
	err := yaml.Unmarshal(lookupCasesYAML, &file)
	require.NoError(t, err)
	require.NotEmpty(t, file.Cases)

	for _, tc := range file.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			object, err := WrapObject(tc.Document)
			require.NoError(t, err)

			for _, lookup := range tc.Lookups {
				path, err := ParseFieldPath(lookup.Path)
				require.NoError(t, err)

				value, ok := object.Get(path)
				if lookup.Absent {
					assert.False(t, ok, "path %s", lookup.Path)
					continue
				}
				require.True(t, ok, "path %s", lookup.Path)

				expect, err := Wrap(lookup.Value)
				require.NoError(t, err)
				assert.True(t, expect.Equal(value), "path %s: expected %s, got %s", lookup.Path, expect, value)
			}
		})
	}
}

func TestNewObjectValueInsertionOrderIndependent(t *testing.T) {
	aPath, err := ParseFieldPath("a")
	require.NoError(t, err)
	bPath, err := ParseFieldPath("b")
	require.NoError(t, err)

	fromMap := NewObjectValue(map[string]FieldValue{
		"a": NewInteger(1),
		"b": NewString("x"),
	})
	forward := EmptyObjectValue().
		Set(aPath, NewInteger(1)).
		Set(bPath, NewString("x"))
	backward := EmptyObjectValue().
		Set(bPath, NewString("x")).
		Set(aPath, NewInteger(1))

	assert.True(t, fromMap.Equal(forward))
	assert.True(t, forward.Equal(backward))
	assert.Equal(t, fromMap.String(), backward.String())
}

func TestObjectValueSet(t *testing.T) {
	aPath, err := ParseFieldPath("a")
	require.NoError(t, err)
	nested, err := ParseFieldPath("outer.inner.leaf")
	require.NoError(t, err)

	base := NewObjectValue(map[string]FieldValue{"a": NewInteger(1)})

	replaced := base.Set(aPath, NewInteger(2))
	value, ok := replaced.Get(aPath)
	require.True(t, ok)
	assert.True(t, value.Equal(NewInteger(2)))

	// The receiver is never modified.
	value, ok = base.Get(aPath)
	require.True(t, ok)
	assert.True(t, value.Equal(NewInteger(1)))

	created := base.Set(nested, NewBoolean(true))
	value, ok = created.Get(nested)
	require.True(t, ok)
	assert.True(t, value.Equal(NewBoolean(true)))

	// Setting through a non-object value replaces it with objects.
	overPath, err := ParseFieldPath("a.b")
	require.NoError(t, err)
	overwritten := base.Set(overPath, NewString("deep"))
	value, ok = overwritten.Get(overPath)
	require.True(t, ok)
	assert.True(t, value.Equal(NewString("deep")))
}

func TestObjectValueDelete(t *testing.T) {
	aPath, err := ParseFieldPath("a")
	require.NoError(t, err)
	bPath, err := ParseFieldPath("b")
	require.NoError(t, err)
	nested, err := ParseFieldPath("outer.inner")
	require.NoError(t, err)

	base := NewObjectValue(map[string]FieldValue{
		"a": NewInteger(1),
		"outer": NewObject(NewObjectValue(map[string]FieldValue{
			"inner": NewString("x"),
			"keep":  NewString("y"),
		})),
	})

	removed := base.Delete(aPath)
	_, ok := removed.Get(aPath)
	assert.False(t, ok)
	_, ok = base.Get(aPath)
	assert.True(t, ok)

	unchanged := base.Delete(bPath)
	assert.True(t, unchanged.Equal(base))

	pruned := base.Delete(nested)
	_, ok = pruned.Get(nested)
	assert.False(t, ok)
	keepPath, err := ParseFieldPath("outer.keep")
	require.NoError(t, err)
	_, ok = pruned.Get(keepPath)
	assert.True(t, ok)
}

func TestObjectValueGetEmptyPath(t *testing.T) {
	base := NewObjectValue(map[string]FieldValue{"a": NewInteger(1)})

	var empty FieldPath
	value, ok := base.Get(empty)
	require.True(t, ok)
	assert.True(t, value.Equal(NewObject(base)))
}

func TestObjectValueEmptyPathPanics(t *testing.T) {
	base := EmptyObjectValue()
	var empty FieldPath

	assert.Panics(t, func() { base.Set(empty, Null) })
	assert.Panics(t, func() { base.Delete(empty) })
}

func TestObjectValueForEach(t *testing.T) {
	base := NewObjectValue(map[string]FieldValue{
		"c": NewInteger(3),
		"a": NewInteger(1),
		"b": NewInteger(2),
	})

	var names []string
	base.ForEach(func(name string, value FieldValue) {
		names = append(names, name)
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 3, base.Len())
}
