package model

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the representation stored in a FieldValue.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindDouble
	KindTimestamp
	KindString
	KindBlob
	KindReference
	KindGeoPoint
	KindArray
	KindObject
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindTimestamp:
		return "timestamp"
	case KindString:
		return "string"
	case KindBlob:
		return "blob"
	case KindReference:
		return "reference"
	case KindGeoPoint:
		return "geo-point"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		panic(fmt.Sprintf("model: unhandled kind %d", int(k)))
	}
}

// Type order ranks. Values of different kinds order by rank before any
// payload is inspected; integers and doubles share a rank and compare
// numerically against each other.
const (
	TypeOrderNull = iota
	TypeOrderBoolean
	TypeOrderNumber
	TypeOrderTimestamp
	TypeOrderString
	TypeOrderBlob
	TypeOrderReference
	TypeOrderGeoPoint
	TypeOrderArray
	TypeOrderObject
)

// FieldValue is a single immutable document value: a null, boolean,
// number, timestamp, string, blob, reference, geo point, array or
// object. The zero FieldValue is the null value.
//
// Constructors taking slices or objects take ownership of their
// argument; callers must not retain a mutable alias.
type FieldValue struct {
	kind  Kind
	value any
}

// Null is the null value.
var Null = FieldValue{}

// NewBoolean creates a boolean value.
func NewBoolean(b bool) FieldValue {
	return FieldValue{kind: KindBoolean, value: b}
}

// NewInteger creates a 64-bit integer value.
func NewInteger(i int64) FieldValue {
	return FieldValue{kind: KindInteger, value: i}
}

// NewDouble creates a 64-bit floating point value. NaN and the
// infinities are legal payloads.
func NewDouble(d float64) FieldValue {
	return FieldValue{kind: KindDouble, value: d}
}

// NewTimestamp creates a timestamp value.
func NewTimestamp(t time.Time) FieldValue {
	return FieldValue{kind: KindTimestamp, value: t.UTC()}
}

// NewString creates a string value.
func NewString(s string) FieldValue {
	return FieldValue{kind: KindString, value: s}
}

// NewBlob creates a binary value, taking ownership of the byte slice.
func NewBlob(b []byte) FieldValue {
	return FieldValue{kind: KindBlob, value: b}
}

// NewReference creates a value pointing at a document.
func NewReference(r Reference) FieldValue {
	return FieldValue{kind: KindReference, value: r}
}

// NewGeoPoint creates a geographical point value.
func NewGeoPoint(g GeoPoint) FieldValue {
	return FieldValue{kind: KindGeoPoint, value: g}
}

// NewArray creates an array value from its elements in order, taking
// ownership of the slice.
func NewArray(values ...FieldValue) FieldValue {
	return FieldValue{kind: KindArray, value: values}
}

// NewObject creates an object value wrapping nested fields.
func NewObject(o ObjectValue) FieldValue {
	return FieldValue{kind: KindObject, value: o}
}

// Kind returns the representation stored in the value.
func (v FieldValue) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the null value.
func (v FieldValue) IsNull() bool {
	return v.kind == KindNull
}

func (v FieldValue) assertKind(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("model: requested %s payload of %s value", k, v.kind))
	}
}

// Boolean returns the boolean payload, panicking for other kinds.
func (v FieldValue) Boolean() bool {
	v.assertKind(KindBoolean)
	return v.value.(bool)
}

// Integer returns the integer payload, panicking for other kinds.
func (v FieldValue) Integer() int64 {
	v.assertKind(KindInteger)
	return v.value.(int64)
}

// Double returns the double payload, panicking for other kinds.
func (v FieldValue) Double() float64 {
	v.assertKind(KindDouble)
	return v.value.(float64)
}

// Timestamp returns the timestamp payload, panicking for other kinds.
func (v FieldValue) Timestamp() time.Time {
	v.assertKind(KindTimestamp)
	return v.value.(time.Time)
}

// StringValue returns the string payload, panicking for other kinds.
func (v FieldValue) StringValue() string {
	v.assertKind(KindString)
	return v.value.(string)
}

// Blob returns the binary payload, panicking for other kinds. The
// returned slice must not be modified.
func (v FieldValue) Blob() []byte {
	v.assertKind(KindBlob)
	return v.value.([]byte)
}

// Reference returns the reference payload, panicking for other kinds.
func (v FieldValue) Reference() Reference {
	v.assertKind(KindReference)
	return v.value.(Reference)
}

// GeoPoint returns the geo point payload, panicking for other kinds.
func (v FieldValue) GeoPoint() GeoPoint {
	v.assertKind(KindGeoPoint)
	return v.value.(GeoPoint)
}

// Array returns the array elements, panicking for other kinds. The
// returned slice must not be modified.
func (v FieldValue) Array() []FieldValue {
	v.assertKind(KindArray)
	return v.value.([]FieldValue)
}

// Object returns the nested fields, panicking for other kinds.
func (v FieldValue) Object() ObjectValue {
	v.assertKind(KindObject)
	return v.value.(ObjectValue)
}

// TypeOrder returns the value's rank in the cross-kind ordering.
func (v FieldValue) TypeOrder() int {
	switch v.kind {
	case KindNull:
		return TypeOrderNull
	case KindBoolean:
		return TypeOrderBoolean
	case KindInteger, KindDouble:
		return TypeOrderNumber
	case KindTimestamp:
		return TypeOrderTimestamp
	case KindString:
		return TypeOrderString
	case KindBlob:
		return TypeOrderBlob
	case KindReference:
		return TypeOrderReference
	case KindGeoPoint:
		return TypeOrderGeoPoint
	case KindArray:
		return TypeOrderArray
	case KindObject:
		return TypeOrderObject
	default:
		panic(fmt.Sprintf("model: unhandled kind %d", int(v.kind)))
	}
}

// Compare defines the total order over values: by type order rank
// first, then by payload within the rank. It returns -1, 0 or 1.
//
// Within numbers, integers and doubles compare by numeric value, so
// NewInteger(1) and NewDouble(1.0) are equal. NaN orders before all
// other numbers and is equal to itself, and -0.0 is equal to 0.0.
func (v FieldValue) Compare(other FieldValue) int {
	left, right := v.TypeOrder(), other.TypeOrder()
	if left != right {
		if left < right {
			return -1
		}
		return 1
	}
	switch left {
	case TypeOrderNull:
		return 0
	case TypeOrderBoolean:
		return compareBooleans(v.Boolean(), other.Boolean())
	case TypeOrderNumber:
		return compareNumbers(v, other)
	case TypeOrderTimestamp:
		return v.Timestamp().Compare(other.Timestamp())
	case TypeOrderString:
		return strings.Compare(v.StringValue(), other.StringValue())
	case TypeOrderBlob:
		return bytes.Compare(v.Blob(), other.Blob())
	case TypeOrderReference:
		return v.Reference().Compare(other.Reference())
	case TypeOrderGeoPoint:
		return v.GeoPoint().Compare(other.GeoPoint())
	case TypeOrderArray:
		return compareArrays(v.Array(), other.Array())
	case TypeOrderObject:
		return v.Object().Compare(other.Object())
	default:
		panic(fmt.Sprintf("model: unhandled type order %d", left))
	}
}

// Equal reports whether both values are equal under the total order.
func (v FieldValue) Equal(other FieldValue) bool {
	return v.Compare(other) == 0
}

// String formats the value for debugging.
func (v FieldValue) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(v.Boolean())
	case KindInteger:
		return strconv.FormatInt(v.Integer(), 10)
	case KindDouble:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case KindTimestamp:
		return v.Timestamp().Format(time.RFC3339Nano)
	case KindString:
		return strconv.Quote(v.StringValue())
	case KindBlob:
		return "0x" + hex.EncodeToString(v.Blob())
	case KindReference:
		return v.Reference().String()
	case KindGeoPoint:
		return v.GeoPoint().String()
	case KindArray:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.Array() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
		b.WriteByte(']')
		return b.String()
	case KindObject:
		return v.Object().String()
	default:
		panic(fmt.Sprintf("model: unhandled kind %d", int(v.kind)))
	}
}

func compareBooleans(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	default:
		return 0
	}
}

// compareFloats is a total order over doubles: NaN sorts before every
// other double and is equal to itself, and -0.0 is equal to 0.0.
func compareFloats(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64s(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareIntToDouble compares an integer against a double exactly,
// without rounding the integer through a float64 first. Doubles beyond
// the int64 range order on the matching side of every integer.
func compareIntToDouble(i int64, d float64) int {
	if math.IsNaN(d) {
		return 1
	}
	if d >= 0x1p63 {
		return -1
	}
	if d < -0x1p63 {
		return 1
	}
	truncated := int64(d)
	if i != truncated {
		return compareInt64s(i, truncated)
	}
	// Same integral part, so any fractional part of d breaks the tie.
	// For |d| beyond 2^53 the fraction is always zero.
	frac := d - float64(truncated)
	switch {
	case frac > 0:
		return -1
	case frac < 0:
		return 1
	default:
		return 0
	}
}

func compareNumbers(a, b FieldValue) int {
	if a.kind == KindInteger {
		if b.kind == KindInteger {
			return compareInt64s(a.Integer(), b.Integer())
		}
		return compareIntToDouble(a.Integer(), b.Double())
	}
	if b.kind == KindInteger {
		return -compareIntToDouble(b.Integer(), a.Double())
	}
	return compareFloats(a.Double(), b.Double())
}

func compareArrays(a, b []FieldValue) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
