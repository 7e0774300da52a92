package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testRadius = 5.0

func buildFilter(p Params) bson.M {
	return Build(p, testRadius).Filter
}

func TestEnumRules(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.M{"propertyFor": "rent"}, buildFilter(Params{"property_for": "rent"}))
	assert.Equal(t, bson.M{"ownership": "direct_owner"}, buildFilter(Params{"ownership": "direct_owner"}))

	// Unknown enum values are skipped, not rejected.
	assert.Equal(t, bson.M{}, buildFilter(Params{"property_for": "lease"}))
	assert.Equal(t, bson.M{}, buildFilter(Params{"ownership": "bank"}))
}

func TestFurnishingRule(t *testing.T) {
	t.Parallel()

	filter := buildFilter(Params{"furnishing": "Semi Furnished"})
	pattern, ok := filter["furnishing"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "^Semi Furnished$", pattern.Pattern)
	assert.Equal(t, "i", pattern.Options)
}

func TestPriceParametersAreIgnored(t *testing.T) {
	t.Parallel()

	with := buildFilter(Params{"price_min": "1000000", "price_max": "5000000", "bedrooms_min": "3"})
	without := buildFilter(Params{"bedrooms_min": "3"})
	assert.Equal(t, without, with)
}

func TestAreaGroupGatedOnUnit(t *testing.T) {
	t.Parallel()

	t.Run("no unit means no area predicates at all", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFilter(Params{"area_min": "500", "area_max": "2000"}))
	})

	t.Run("invalid unit skips the whole group", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFilter(Params{"area_unit": "hectare", "area_min": "500"}))
	})

	t.Run("valid unit applies unit and both bounds", func(t *testing.T) {
		filter := buildFilter(Params{"area_unit": "sqft", "area_min": "500", "area_max": "2000"})
		assert.Equal(t, bson.M{
			"areaUnit": "sqft",
			"area":     bson.M{"$gte": 500, "$lte": 2000},
		}, filter)
	})
}

func TestDateRules(t *testing.T) {
	t.Parallel()

	filter := buildFilter(Params{"date_from": "2024-01-02", "date_to": "2024-02-03"})
	cond, ok := filter["createdAt"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), cond["$gte"])
	assert.Equal(t, time.Date(2024, 2, 3, 23, 59, 59, 999999999, time.UTC), cond["$lte"])

	// A malformed bound is skipped independently of the other.
	filter = buildFilter(Params{"date_from": "01/02/2024", "date_to": "2024-02-03"})
	cond = filter["createdAt"].(bson.M)
	assert.NotContains(t, cond, "$gte")
	assert.Contains(t, cond, "$lte")
}

func TestRangeAndReferenceRules(t *testing.T) {
	t.Parallel()

	filter := buildFilter(Params{
		"bedrooms_min":  "2",
		"bedrooms_max":  "4",
		"bathrooms_min": "1",
		"property_type": "7",
		"state_id":      "1",
		"district_id":   "2",
		"city_id":       "3",
	})
	assert.Equal(t, bson.M{
		"bedrooms":        bson.M{"$gte": 2, "$lte": 4},
		"bathrooms":       bson.M{"$gte": 1},
		"propertyType.id": int64(7),
		"state.id":        int64(1),
		"district.id":     int64(2),
		"city.id":         int64(3),
	}, filter)
}

func TestLocationRule(t *testing.T) {
	t.Parallel()

	filter := buildFilter(Params{"location": "lahore"})
	clauses, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 3)

	fields := map[string]bool{}
	for _, clause := range clauses {
		for field, cond := range clause {
			fields[field] = true
			pattern := cond.(primitive.Regex)
			assert.Equal(t, "lahore", pattern.Pattern)
			assert.Equal(t, "i", pattern.Options)
		}
	}
	assert.Equal(t, map[string]bool{"city.name": true, "district.name": true, "state.name": true}, fields)
}

func TestGeoFiltering(t *testing.T) {
	t.Parallel()

	t.Run("absent geo parameters add nothing", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFilter(Params{}))
	})

	t.Run("a lone center coordinate does not trigger geo", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFilter(Params{"latitude": "31.5"}))
	})

	t.Run("any explicit bound excludes properties without coordinates", func(t *testing.T) {
		filter := buildFilter(Params{"lat_min": "31.0"})
		assert.Equal(t, bson.M{
			"latitude":  bson.M{"$ne": nil, "$gte": 31.0},
			"longitude": bson.M{"$ne": nil},
		}, filter)
	})

	t.Run("center point applies the radius bounding box", func(t *testing.T) {
		filter := buildFilter(Params{"latitude": "31.5", "longitude": "74.3", "radius": "10"})
		bounds, err := BoundsForRadius(31.5, 74.3, 10)
		require.NoError(t, err)

		lat := filter["latitude"].(bson.M)
		lng := filter["longitude"].(bson.M)
		assert.Equal(t, nil, lat["$ne"])
		assert.InDelta(t, bounds.LatMin, lat["$gte"].(float64), 1e-9)
		assert.InDelta(t, bounds.LatMax, lat["$lte"].(float64), 1e-9)
		assert.InDelta(t, bounds.LngMin, lng["$gte"].(float64), 1e-9)
		assert.InDelta(t, bounds.LngMax, lng["$lte"].(float64), 1e-9)
	})

	t.Run("missing or invalid radius falls back to the site default", func(t *testing.T) {
		bounds, err := BoundsForRadius(31.5, 74.3, testRadius)
		require.NoError(t, err)

		for _, p := range []Params{
			{"latitude": "31.5", "longitude": "74.3"},
			{"latitude": "31.5", "longitude": "74.3", "radius": "abc"},
			{"latitude": "31.5", "longitude": "74.3", "radius": "-2"},
		} {
			filter := buildFilter(p)
			lat := filter["latitude"].(bson.M)
			assert.InDelta(t, bounds.LatMin, lat["$gte"].(float64), 1e-9)
		}
	})

	t.Run("explicit bounds intersect with the radius box", func(t *testing.T) {
		bounds, err := BoundsForRadius(31.5, 74.3, 10)
		require.NoError(t, err)

		// Looser explicit bound: the box wins.
		filter := buildFilter(Params{"latitude": "31.5", "longitude": "74.3", "radius": "10", "lat_min": "20.0"})
		lat := filter["latitude"].(bson.M)
		assert.InDelta(t, bounds.LatMin, lat["$gte"].(float64), 1e-9)

		// Tighter explicit bound: the bound wins.
		filter = buildFilter(Params{"latitude": "31.5", "longitude": "74.3", "radius": "10", "lat_min": "31.49"})
		lat = filter["latitude"].(bson.M)
		assert.InDelta(t, 31.49, lat["$gte"].(float64), 1e-9)
	})
}

func TestBuildComposesFieldsLocationAndSearch(t *testing.T) {
	t.Parallel()

	q := Build(Params{
		"bedrooms_min": "3",
		"area_unit":    "sqft",
		"location":     "punjab",
		"search":       "Lahore villa",
	}, testRadius)

	clauses, ok := q.Filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 3)

	assert.Equal(t, bson.M{
		"bedrooms": bson.M{"$gte": 3},
		"areaUnit": "sqft",
	}, clauses[0])
	assert.Contains(t, clauses[1], "$or")
	assert.Contains(t, clauses[2], "$and")
}

func TestUnrecognizedParametersAreIgnored(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.M{}, buildFilter(Params{"sort_by": "price", "foo": "bar"}))
}
