package model

import (
	"fmt"
)

// GeoPoint is a geographical point expressed as latitude and longitude
// in degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Compare orders points by latitude, then longitude.
func (g GeoPoint) Compare(other GeoPoint) int {
	if c := compareFloats(g.Latitude, other.Latitude); c != 0 {
		return c
	}
	return compareFloats(g.Longitude, other.Longitude)
}

// Equal reports whether both points have the same coordinates.
func (g GeoPoint) Equal(other GeoPoint) bool {
	return g.Compare(other) == 0
}

// String formats the point for debugging.
func (g GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%v, %v)", g.Latitude, g.Longitude)
}
