package model

import (
	"sort"
	"strings"
)

// field is a single named entry of an object.
type field struct {
	name  string
	value FieldValue
}

// ObjectValue is an immutable set of named fields, kept sorted by field
// name. Two objects built from the same entries in any insertion order
// are equal. The zero ObjectValue is the empty object.
//
// Set and Delete return new objects and never modify the receiver.
type ObjectValue struct {
	fields []field
}

// EmptyObjectValue returns the object with no fields.
func EmptyObjectValue() ObjectValue {
	return ObjectValue{}
}

// NewObjectValue creates an object from a map of top-level fields.
func NewObjectValue(fields map[string]FieldValue) ObjectValue {
	if len(fields) == 0 {
		return ObjectValue{}
	}
	entries := make([]field, 0, len(fields))
	for name, value := range fields {
		entries = append(entries, field{name: name, value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})
	return ObjectValue{fields: entries}
}

// Len returns the number of top-level fields.
func (o ObjectValue) Len() int {
	return len(o.fields)
}

// fieldIndex locates name in the sorted entries, returning its index
// and whether it is present. For an absent name the index is where the
// entry would be inserted.
func (o ObjectValue) fieldIndex(name string) (int, bool) {
	i := sort.Search(len(o.fields), func(j int) bool {
		return o.fields[j].name >= name
	})
	if i < len(o.fields) && o.fields[i].name == name {
		return i, true
	}
	return i, false
}

func (o ObjectValue) fieldValue(name string) (FieldValue, bool) {
	if i, ok := o.fieldIndex(name); ok {
		return o.fields[i].value, true
	}
	return FieldValue{}, false
}

// Get returns the value at path. The second result reports whether the
// path is present; descending through a missing field or through a
// non-object value is an absence, not an error. The empty path returns
// the whole object.
func (o ObjectValue) Get(path FieldPath) (FieldValue, bool) {
	if path.Empty() {
		return NewObject(o), true
	}
	current := o
	for i := 0; i < path.Len()-1; i++ {
		v, ok := current.fieldValue(path.Segment(i))
		if !ok || v.Kind() != KindObject {
			return FieldValue{}, false
		}
		current = v.Object()
	}
	return current.fieldValue(path.LastSegment())
}

// Set returns a new object with value stored at path, creating
// intermediate objects as needed and replacing any non-object value in
// the way. Setting the empty path is a programming error and panics.
func (o ObjectValue) Set(path FieldPath, value FieldValue) ObjectValue {
	if path.Empty() {
		panic("model: cannot set the empty field path on an object")
	}
	name := path.FirstSegment()
	if path.Len() == 1 {
		return o.setField(name, value)
	}
	child := ObjectValue{}
	if existing, ok := o.fieldValue(name); ok && existing.Kind() == KindObject {
		child = existing.Object()
	}
	return o.setField(name, NewObject(child.Set(path.PopFirst(), value)))
}

// Delete returns a new object with the value at path removed. Deleting
// an absent path returns the object unchanged. Deleting the empty path
// is a programming error and panics.
func (o ObjectValue) Delete(path FieldPath) ObjectValue {
	if path.Empty() {
		panic("model: cannot delete the empty field path on an object")
	}
	name := path.FirstSegment()
	if path.Len() == 1 {
		return o.deleteField(name)
	}
	existing, ok := o.fieldValue(name)
	if !ok || existing.Kind() != KindObject {
		return o
	}
	child := existing.Object()
	updated := child.Delete(path.PopFirst())
	return o.setField(name, NewObject(updated))
}

func (o ObjectValue) setField(name string, value FieldValue) ObjectValue {
	i, found := o.fieldIndex(name)
	fields := make([]field, 0, len(o.fields)+1)
	fields = append(fields, o.fields[:i]...)
	fields = append(fields, field{name: name, value: value})
	if found {
		fields = append(fields, o.fields[i+1:]...)
	} else {
		fields = append(fields, o.fields[i:]...)
	}
	return ObjectValue{fields: fields}
}

func (o ObjectValue) deleteField(name string) ObjectValue {
	i, found := o.fieldIndex(name)
	if !found {
		return o
	}
	fields := make([]field, 0, len(o.fields)-1)
	fields = append(fields, o.fields[:i]...)
	fields = append(fields, o.fields[i+1:]...)
	return ObjectValue{fields: fields}
}

// ForEach visits the top-level fields in name order.
func (o ObjectValue) ForEach(fn func(name string, value FieldValue)) {
	for _, f := range o.fields {
		fn(f.name, f.value)
	}
}

// Compare orders objects by their sorted entries: field names decide
// first, then values, then the shorter object.
func (o ObjectValue) Compare(other ObjectValue) int {
	for i := 0; i < len(o.fields) && i < len(other.fields); i++ {
		if c := strings.Compare(o.fields[i].name, other.fields[i].name); c != 0 {
			return c
		}
		if c := o.fields[i].value.Compare(other.fields[i].value); c != 0 {
			return c
		}
	}
	switch {
	case len(o.fields) < len(other.fields):
		return -1
	case len(o.fields) > len(other.fields):
		return 1
	default:
		return 0
	}
}

// Equal reports whether both objects hold equal fields under the value
// order, regardless of how they were built.
func (o ObjectValue) Equal(other ObjectValue) bool {
	return o.Compare(other) == 0
}

// String formats the object for debugging.
func (o ObjectValue) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteString(": ")
		b.WriteString(f.value.String())
	}
	b.WriteByte('}')
	return b.String()
}
