package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// termFields are the document paths a single search term may match. Array
// paths (features.name, nearbyPlaces) match if any element contains the term.
var termFields = []string{
	"title",
	"description",
	"propertyType.name",
	"contactName",
	"features.name",
	"nearbyPlaces",
	"state.name",
	"district.name",
	"city.name",
	"propertyFor",
	"ownership",
	"furnishing",
	"price",
}

// SplitTerms splits a free-text query on whitespace and drops empty tokens.
func SplitTerms(s string) []string {
	var terms []string
	for _, t := range strings.Fields(s) {
		t = strings.TrimSpace(t)
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// containsPattern builds a case-insensitive literal substring match.
func containsPattern(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// TermsFilter ANDs one per-term clause for every term; each clause is an OR
// across all searchable fields. A document must satisfy every term, but
// different terms may be satisfied by different fields.
func TermsFilter(terms []string) bson.M {
	if len(terms) == 0 {
		return nil
	}

	clauses := make([]bson.M, 0, len(terms))
	for _, term := range terms {
		pattern := containsPattern(term)
		anyField := make([]bson.M, 0, len(termFields))
		for _, field := range termFields {
			anyField = append(anyField, bson.M{field: pattern})
		}
		clauses = append(clauses, bson.M{"$or": anyField})
	}

	if len(clauses) == 1 {
		return clauses[0]
	}
	return bson.M{"$and": clauses}
}
