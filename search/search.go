// Package search turns the raw property-listing query string into a single
// Mongo filter: one conjunction of range, enum, location, free-text and
// geo-proximity predicates. Unrecognized parameters are ignored and invalid
// values degrade to "filter not applied"; composing a query never fails.
package search

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asseton1/Asseton-Backend/models"
)

// Query is a composed, ready-to-run property query.
type Query struct {
	Filter bson.M
	Sort   bson.D
}

// Build composes the filter for the given parameters. defaultRadiusKM is the
// site-wide proximity radius applied when a center point is supplied without
// an explicit radius; the caller fetches it from the site settings once per
// request. Results sort newest first, ties broken by id descending (ids are
// assigned from a monotonic sequence, so equal timestamps resolve to the most
// recently inserted).
func Build(p Params, defaultRadiusKM float64) Query {
	c := newConjunction()
	for _, rule := range filterRules {
		rule.apply(p, c)
	}
	applyGeo(p, c, defaultRadiusKM)

	if raw, ok := p.Text("search"); ok {
		if tf := TermsFilter(SplitTerms(raw)); tf != nil {
			c.extra = append(c.extra, tf)
		}
	}

	return Query{
		Filter: c.filter(),
		Sort:   bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
	}
}

// Service runs composed queries against the properties collection.
type Service struct {
	collection *mongo.Collection
}

func NewService(collection *mongo.Collection) *Service {
	return &Service{collection: collection}
}

// Search builds and executes the query, returning one page of matching
// properties in order. Storage errors propagate unchanged.
func (s *Service) Search(ctx context.Context, p Params, defaultRadiusKM float64) ([]models.Property, error) {
	query := Build(p, defaultRadiusKM)
	skip, limit := p.Pagination()

	opts := options.Find().SetSort(query.Sort).SetSkip(skip).SetLimit(limit)
	cursor, err := s.collection.Find(ctx, query.Filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return dedupe(properties), nil
}

// dedupe keeps the first occurrence of each id, preserving order. Predicates
// over embedded arrays yield a document once, but the result contract is
// exactly-once per property regardless of how the filter was satisfied.
func dedupe(properties []models.Property) []models.Property {
	seen := make(map[int64]struct{}, len(properties))
	out := properties[:0]
	for _, property := range properties {
		if _, ok := seen[property.ID]; ok {
			continue
		}
		seen[property.ID] = struct{}{}
		out = append(out, property)
	}
	return out
}
