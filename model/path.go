package model

import (
	"errors"
	"strings"
)

// ErrInvalidPath is returned when a path cannot be built from its input.
// Callers can match it with errors.Is to reject malformed input without
// inspecting the message.
var ErrInvalidPath = errors.New("invalid path")

// comparePathSegments orders two segment sequences lexicographically,
// segment by segment, with a shorter prefix ordering before its extensions.
func comparePathSegments(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
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

// isPathPrefix returns true if prefix is a leading subsequence of other.
// A sequence is a prefix of itself.
func isPathPrefix(prefix, other []string) bool {
	if len(prefix) > len(other) {
		return false
	}
	for i, s := range prefix {
		if other[i] != s {
			return false
		}
	}
	return true
}
