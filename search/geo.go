package search

import (
	"errors"
	"math"
)

// ErrInvalidArgument is returned for non-finite coordinate or radius inputs.
var ErrInvalidArgument = errors.New("search: non-finite coordinate or radius")

// kmPerDegree is the approximate length of one degree of latitude. One degree
// of longitude spans kmPerDegree * cos(latitude) kilometers.
const kmPerDegree = 111.0

// Bounds is an axis-aligned lat/lng box. When LngBounded is false the
// longitude constraint is unbounded (radius search centered at a pole).
type Bounds struct {
	LatMin, LatMax float64
	LngMin, LngMax float64
	LngBounded     bool
}

// BoundsForRadius converts a center point and a radius in kilometers into a
// bounding box guaranteed to contain every point within the radius. The box
// admits false positives near its corners; callers accept that in exchange
// for a cheap rectangular predicate.
func BoundsForRadius(lat, lng, radiusKM float64) (Bounds, error) {
	for _, v := range []float64{lat, lng, radiusKM} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Bounds{}, ErrInvalidArgument
		}
	}

	latDegree := radiusKM / kmPerDegree

	b := Bounds{
		LatMin: lat - latDegree,
		LatMax: lat + latDegree,
	}

	// cos hits zero at the poles, where every longitude is within reach.
	cosLat := math.Abs(math.Cos(lat * math.Pi / 180))
	if cosLat < 1e-9 {
		return b, nil
	}

	lngDegree := radiusKM / (kmPerDegree * cosLat)
	b.LngMin = lng - lngDegree
	b.LngMax = lng + lngDegree
	b.LngBounded = true
	return b, nil
}
