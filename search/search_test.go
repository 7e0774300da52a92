package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Asseton1/Asseton-Backend/models"
)

func TestBuildSortOrder(t *testing.T) {
	t.Parallel()

	q := Build(Params{}, testRadius)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, q.Sort)

	// The sort order does not depend on which filters applied.
	q = Build(Params{"search": "villa", "bedrooms_min": "2"}, testRadius)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, q.Sort)
}

func TestBuildEmptyParams(t *testing.T) {
	t.Parallel()

	q := Build(Params{}, testRadius)
	assert.Equal(t, bson.M{}, q.Filter)
}

func TestBuildSearchOnly(t *testing.T) {
	t.Parallel()

	q := Build(Params{"search": "villa"}, testRadius)
	assert.Contains(t, q.Filter, "$or")
	assert.NotContains(t, q.Filter, "$and")
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	t.Run("keeps first occurrence in order", func(t *testing.T) {
		in := []models.Property{{ID: 3}, {ID: 1}, {ID: 3}, {ID: 2}, {ID: 1}}
		out := dedupe(in)
		ids := make([]int64, 0, len(out))
		for _, p := range out {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []int64{3, 1, 2}, ids)
	})

	t.Run("no duplicates is a no-op", func(t *testing.T) {
		in := []models.Property{{ID: 1}, {ID: 2}}
		assert.Len(t, dedupe(in), 2)
	})

	t.Run("empty slice", func(t *testing.T) {
		assert.Empty(t, dedupe([]models.Property{}))
	})
}
