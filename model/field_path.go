package model

import (
	"fmt"
	"strings"
)

// KeyFieldName is the canonical form of the field path addressing the
// document key rather than a field inside the document.
const KeyFieldName = "__name__"

// FieldPath addresses a location inside nested document content as an
// ordered list of field name segments. Segments may contain any
// characters, including dots; the canonical string form escapes segments
// that need it.
//
// FieldPath values are immutable. Deriving operations return new paths
// and never modify the receiver.
type FieldPath struct {
	segments []string
}

// KeyFieldPath returns the field path addressing the document key.
func KeyFieldPath() FieldPath {
	return FieldPath{segments: []string{KeyFieldName}}
}

// NewFieldPath creates a field path from already split segments, taking
// ownership of the slice. It returns ErrInvalidPath if no segments are
// given or any segment is empty.
func NewFieldPath(segments ...string) (FieldPath, error) {
	if len(segments) == 0 {
		return FieldPath{}, fmt.Errorf("%w: field path cannot be empty", ErrInvalidPath)
	}
	for _, s := range segments {
		if s == "" {
			return FieldPath{}, fmt.Errorf("%w: field path segment cannot be empty", ErrInvalidPath)
		}
	}
	return FieldPath{segments: segments}, nil
}

// ParseFieldPath parses the canonical dotted form of a field path.
//
// Dots separate segments. A segment that does not look like an
// identifier must be wrapped in backticks, inside which a backslash
// escapes the next character. ParseFieldPath is the inverse of
// FieldPath.String.
func ParseFieldPath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, fmt.Errorf("%w: field path cannot be empty", ErrInvalidPath)
	}
	var segments []string
	var segment strings.Builder
	inBackticks := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '\\':
			if i+1 == len(path) {
				return FieldPath{}, fmt.Errorf("%w: trailing escape character: %q", ErrInvalidPath, path)
			}
			i++
			segment.WriteByte(path[i])
		case c == '`':
			inBackticks = !inBackticks
		case c == '.' && !inBackticks:
			if segment.Len() == 0 {
				return FieldPath{}, fmt.Errorf("%w: empty segment in field path: %q", ErrInvalidPath, path)
			}
			segments = append(segments, segment.String())
			segment.Reset()
		default:
			segment.WriteByte(c)
		}
	}
	if inBackticks {
		return FieldPath{}, fmt.Errorf("%w: unterminated backtick in field path: %q", ErrInvalidPath, path)
	}
	if segment.Len() == 0 {
		return FieldPath{}, fmt.Errorf("%w: empty segment in field path: %q", ErrInvalidPath, path)
	}
	segments = append(segments, segment.String())
	return FieldPath{segments: segments}, nil
}

// Len returns the number of segments in the path.
func (p FieldPath) Len() int {
	return len(p.segments)
}

// Empty reports whether the path has no segments.
func (p FieldPath) Empty() bool {
	return len(p.segments) == 0
}

// Segment returns the segment at index i.
func (p FieldPath) Segment(i int) string {
	return p.segments[i]
}

// FirstSegment returns the first segment of a non-empty path.
func (p FieldPath) FirstSegment() string {
	return p.segments[0]
}

// LastSegment returns the last segment of a non-empty path.
func (p FieldPath) LastSegment() string {
	return p.segments[len(p.segments)-1]
}

// PopFirst returns the path without its first segment.
func (p FieldPath) PopFirst() FieldPath {
	return FieldPath{segments: p.segments[1:]}
}

// Append returns a new path with segment added at the end. The receiver
// is left unchanged.
func (p FieldPath) Append(segment string) FieldPath {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, segment)
	return FieldPath{segments: segments}
}

// IsPrefixOf reports whether every segment of p matches the leading
// segments of other. A path is a prefix of itself.
func (p FieldPath) IsPrefixOf(other FieldPath) bool {
	return isPathPrefix(p.segments, other.segments)
}

// IsKeyFieldPath reports whether the path addresses the document key.
func (p FieldPath) IsKeyFieldPath() bool {
	return len(p.segments) == 1 && p.segments[0] == KeyFieldName
}

// Compare orders field paths segment-wise lexicographically. A path that
// is a strict prefix of another orders first.
func (p FieldPath) Compare(other FieldPath) int {
	return comparePathSegments(p.segments, other.segments)
}

// Equal reports whether both paths have the same segments.
func (p FieldPath) Equal(other FieldPath) bool {
	return comparePathSegments(p.segments, other.segments) == 0
}

// String returns the canonical dotted form, backtick-quoting any segment
// that is not a plain identifier.
func (p FieldPath) String() string {
	var b strings.Builder
	for i, segment := range p.segments {
		if i > 0 {
			b.WriteByte('.')
		}
		if isIdentifierSegment(segment) {
			b.WriteString(segment)
			continue
		}
		b.WriteByte('`')
		for j := 0; j < len(segment); j++ {
			if segment[j] == '`' || segment[j] == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(segment[j])
		}
		b.WriteByte('`')
	}
	return b.String()
}

// isIdentifierSegment reports whether a segment can appear unquoted:
// a letter or underscore followed by letters, digits or underscores.
func isIdentifierSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			continue
		}
		if i > 0 && '0' <= c && c <= '9' {
			continue
		}
		return false
	}
	return true
}
