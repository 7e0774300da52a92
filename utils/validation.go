package utils

import "math"

// ValidCoordinatePair reports whether latitude and longitude form a usable
// pair: both absent, or both present as finite decimal degrees in range.
// A property with only one coordinate cannot take part in geo filtering.
func ValidCoordinatePair(lat, lng *float64) bool {
	if lat == nil && lng == nil {
		return true
	}
	if lat == nil || lng == nil {
		return false
	}
	if !finite(*lat) || !finite(*lng) {
		return false
	}
	return *lat >= -90 && *lat <= 90 && *lng >= -180 && *lng <= 180
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
