package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSplitTerms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Lahore", "villa"}, SplitTerms("  Lahore   villa "))
	assert.Equal(t, []string{"pool"}, SplitTerms("pool"))
	assert.Nil(t, SplitTerms(""))
	assert.Nil(t, SplitTerms("   \t  "))
}

func TestTermsFilter(t *testing.T) {
	t.Parallel()

	t.Run("no terms means no predicate", func(t *testing.T) {
		assert.Nil(t, TermsFilter(nil))
		assert.Nil(t, TermsFilter([]string{}))
	})

	t.Run("single term is an OR across every searchable field", func(t *testing.T) {
		filter := TermsFilter([]string{"Lahore"})
		clauses, ok := filter["$or"].([]bson.M)
		require.True(t, ok)
		require.Len(t, clauses, len(termFields))

		fields := make(map[string]primitive.Regex, len(clauses))
		for _, clause := range clauses {
			for field, cond := range clause {
				fields[field] = cond.(primitive.Regex)
			}
		}
		for _, field := range []string{"title", "features.name", "city.name", "price", "nearbyPlaces"} {
			pattern, ok := fields[field]
			require.True(t, ok, field)
			assert.Equal(t, "Lahore", pattern.Pattern)
			assert.Equal(t, "i", pattern.Options)
		}
	})

	t.Run("multiple terms are ANDed", func(t *testing.T) {
		filter := TermsFilter([]string{"Lahore", "villa"})
		clauses, ok := filter["$and"].([]bson.M)
		require.True(t, ok)
		require.Len(t, clauses, 2)
		for _, clause := range clauses {
			assert.Contains(t, clause, "$or")
		}
	})

	t.Run("regex metacharacters match literally", func(t *testing.T) {
		filter := TermsFilter([]string{"25+Lakh"})
		clauses := filter["$or"].([]bson.M)
		pattern := clauses[0]["title"].(primitive.Regex)
		assert.Equal(t, `25\+Lakh`, pattern.Pattern)
	})
}
