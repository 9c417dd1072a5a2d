package model

import (
	"fmt"
	"strings"
)

// ResourcePath names a location in the document hierarchy as a list of
// slash-separated segments, alternating collection id and document id
// from the root. Unlike field paths, resource path segments have no
// escaping: a slash always separates segments.
//
// The empty path is valid and names the root of the hierarchy.
type ResourcePath struct {
	segments []string
}

// EmptyResourcePath returns the path of the root of the hierarchy.
func EmptyResourcePath() ResourcePath {
	return ResourcePath{}
}

// NewResourcePath creates a resource path from already split segments,
// taking ownership of the slice. Segments must be non-empty and must not
// contain slashes.
func NewResourcePath(segments ...string) ResourcePath {
	return ResourcePath{segments: segments}
}

// ParseResourcePath splits a slash-separated path into segments. Leading
// and trailing slashes are ignored, but interior empty segments are
// rejected with ErrInvalidPath.
func ParseResourcePath(path string) (ResourcePath, error) {
	if strings.Contains(path, "//") {
		return ResourcePath{}, fmt.Errorf("%w: resource path contains empty segment: %q", ErrInvalidPath, path)
	}
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return ResourcePath{segments: segments}, nil
}

// Len returns the number of segments in the path.
func (p ResourcePath) Len() int {
	return len(p.segments)
}

// Empty reports whether the path has no segments.
func (p ResourcePath) Empty() bool {
	return len(p.segments) == 0
}

// Segment returns the segment at index i.
func (p ResourcePath) Segment(i int) string {
	return p.segments[i]
}

// FirstSegment returns the first segment of a non-empty path.
func (p ResourcePath) FirstSegment() string {
	return p.segments[0]
}

// LastSegment returns the last segment of a non-empty path.
func (p ResourcePath) LastSegment() string {
	return p.segments[len(p.segments)-1]
}

// PopFirst returns the path without its first segment.
func (p ResourcePath) PopFirst() ResourcePath {
	return ResourcePath{segments: p.segments[1:]}
}

// PopLast returns the path without its last segment.
func (p ResourcePath) PopLast() ResourcePath {
	return ResourcePath{segments: p.segments[:len(p.segments)-1]}
}

// Append returns a new path with segment added at the end. The receiver
// is left unchanged.
func (p ResourcePath) Append(segment string) ResourcePath {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, segment)
	return ResourcePath{segments: segments}
}

// IsPrefixOf reports whether every segment of p matches the leading
// segments of other. A path is a prefix of itself.
func (p ResourcePath) IsPrefixOf(other ResourcePath) bool {
	return isPathPrefix(p.segments, other.segments)
}

// Compare orders resource paths segment-wise lexicographically. A path
// that is a strict prefix of another orders first.
func (p ResourcePath) Compare(other ResourcePath) int {
	return comparePathSegments(p.segments, other.segments)
}

// Equal reports whether both paths have the same segments.
func (p ResourcePath) Equal(other ResourcePath) bool {
	return comparePathSegments(p.segments, other.segments) == 0
}

// String joins the segments with slashes. The empty path prints as "".
func (p ResourcePath) String() string {
	return strings.Join(p.segments, "/")
}
