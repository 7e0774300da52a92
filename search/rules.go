package search

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Asseton1/Asseton-Backend/models"
)

// conjunction accumulates the ANDed filter. Most predicates live in fields
// (one condition per document path); clauses that need their own boolean
// scope, like the location OR, go into extra and are joined with $and.
type conjunction struct {
	fields bson.M
	extra  []bson.M
}

func newConjunction() *conjunction {
	return &conjunction{fields: bson.M{}}
}

// addOp merges an operator into the field's condition document.
func (c *conjunction) addOp(field, op string, value interface{}) {
	if cond, ok := c.fields[field].(bson.M); ok {
		cond[op] = value
		return
	}
	c.fields[field] = bson.M{op: value}
}

// tightenBound intersects a numeric bound with whatever is already present:
// $gte keeps the larger value, $lte the smaller, so stacked constraints on
// the same field behave as an AND rather than overwriting each other.
func (c *conjunction) tightenBound(field, op string, value float64) {
	cond, ok := c.fields[field].(bson.M)
	if !ok {
		c.fields[field] = bson.M{op: value}
		return
	}
	if existing, ok := cond[op].(float64); ok {
		if op == "$gte" && existing >= value {
			return
		}
		if op == "$lte" && existing <= value {
			return
		}
	}
	cond[op] = value
}

func (c *conjunction) filter() bson.M {
	if len(c.extra) == 0 {
		return c.fields
	}
	clauses := make([]bson.M, 0, len(c.extra)+1)
	if len(c.fields) > 0 {
		clauses = append(clauses, c.fields)
	}
	clauses = append(clauses, c.extra...)
	if len(clauses) == 1 {
		return clauses[0]
	}
	return bson.M{"$and": clauses}
}

func exactInsensitive(v string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v) + "$", Options: "i"}
}

// filterRule binds one recognized query parameter (or parameter group) to
// the condition it contributes. A rule whose parameter is absent or fails
// coercion contributes nothing; it never fails the request.
type filterRule struct {
	name  string
	apply func(p Params, c *conjunction)
}

var filterRules = []filterRule{
	// price_min / price_max are accepted and ignored: price is free text
	// ("25 Lakh", "Negotiable") and has no numeric ordering.
	{"price_range", func(p Params, c *conjunction) {}},

	{"property_for", func(p Params, c *conjunction) {
		if v, ok := p.Enum("property_for", models.PropertyForValues); ok {
			c.fields["propertyFor"] = v
		}
	}},

	{"ownership", func(p Params, c *conjunction) {
		if v, ok := p.Enum("ownership", models.OwnershipValues); ok {
			c.fields["ownership"] = v
		}
	}},

	{"furnishing", func(p Params, c *conjunction) {
		if v, ok := p.Text("furnishing"); ok {
			c.fields["furnishing"] = exactInsensitive(v)
		}
	}},

	// The area group is gated on a valid area_unit; without one the min and
	// max values would compare numbers measured in different units.
	{"area", func(p Params, c *conjunction) {
		unit, ok := p.Enum("area_unit", models.AreaUnitValues)
		if !ok {
			return
		}
		c.fields["areaUnit"] = unit
		if min, ok := p.Int("area_min"); ok {
			c.addOp("area", "$gte", min)
		}
		if max, ok := p.Int("area_max"); ok {
			c.addOp("area", "$lte", max)
		}
	}},

	{"date_from", func(p Params, c *conjunction) {
		if d, ok := p.Date("date_from"); ok {
			c.addOp("createdAt", "$gte", startOfDay(d))
		}
	}},

	{"date_to", func(p Params, c *conjunction) {
		if d, ok := p.Date("date_to"); ok {
			c.addOp("createdAt", "$lte", endOfDay(d))
		}
	}},

	{"property_type", func(p Params, c *conjunction) {
		if id, ok := p.Int64("property_type"); ok {
			c.fields["propertyType.id"] = id
		}
	}},

	{"bedrooms", func(p Params, c *conjunction) {
		if min, ok := p.Int("bedrooms_min"); ok {
			c.addOp("bedrooms", "$gte", min)
		}
		if max, ok := p.Int("bedrooms_max"); ok {
			c.addOp("bedrooms", "$lte", max)
		}
	}},

	{"bathrooms", func(p Params, c *conjunction) {
		if min, ok := p.Int("bathrooms_min"); ok {
			c.addOp("bathrooms", "$gte", min)
		}
		if max, ok := p.Int("bathrooms_max"); ok {
			c.addOp("bathrooms", "$lte", max)
		}
	}},

	{"state_id", func(p Params, c *conjunction) {
		if id, ok := p.Int64("state_id"); ok {
			c.fields["state.id"] = id
		}
	}},

	{"district_id", func(p Params, c *conjunction) {
		if id, ok := p.Int64("district_id"); ok {
			c.fields["district.id"] = id
		}
	}},

	{"city_id", func(p Params, c *conjunction) {
		if id, ok := p.Int64("city_id"); ok {
			c.fields["city.id"] = id
		}
	}},

	{"location", func(p Params, c *conjunction) {
		v, ok := p.Text("location")
		if !ok {
			return
		}
		pattern := containsPattern(v)
		c.extra = append(c.extra, bson.M{"$or": []bson.M{
			{"city.name": pattern},
			{"district.name": pattern},
			{"state.name": pattern},
		}})
	}},
}

func startOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// applyGeo adds the coordinate predicates. Any explicit bound, or a complete
// center point, switches geo filtering on; from then on properties without
// coordinates are excluded outright. Explicit bounds and the radius box are
// intersected, never overwritten.
func applyGeo(p Params, c *conjunction, defaultRadiusKM float64) {
	latMin, hasLatMin := p.Decimal("lat_min")
	latMax, hasLatMax := p.Decimal("lat_max")
	lngMin, hasLngMin := p.Decimal("lng_min")
	lngMax, hasLngMax := p.Decimal("lng_max")

	lat, hasLat := p.Decimal("latitude")
	lng, hasLng := p.Decimal("longitude")
	hasCenter := hasLat && hasLng

	if !hasLatMin && !hasLatMax && !hasLngMin && !hasLngMax && !hasCenter {
		return
	}

	c.addOp("latitude", "$ne", nil)
	c.addOp("longitude", "$ne", nil)

	if hasLatMin {
		c.tightenBound("latitude", "$gte", latMin)
	}
	if hasLatMax {
		c.tightenBound("latitude", "$lte", latMax)
	}
	if hasLngMin {
		c.tightenBound("longitude", "$gte", lngMin)
	}
	if hasLngMax {
		c.tightenBound("longitude", "$lte", lngMax)
	}

	if !hasCenter {
		return
	}

	radius := defaultRadiusKM
	if r, ok := p.Decimal("radius"); ok && r > 0 {
		radius = r
	}

	bounds, err := BoundsForRadius(lat, lng, radius)
	if err != nil {
		// Decimal already rejected non-finite input, so the box is always
		// computable here; an error means no box to apply.
		return
	}

	c.tightenBound("latitude", "$gte", bounds.LatMin)
	c.tightenBound("latitude", "$lte", bounds.LatMax)
	if bounds.LngBounded {
		c.tightenBound("longitude", "$gte", bounds.LngMin)
		c.tightenBound("longitude", "$lte", bounds.LngMax)
	}
}
