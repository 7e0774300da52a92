package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQueryCacheKey(t *testing.T) {
	t.Parallel()

	t.Run("same parameters in any order share a key", func(t *testing.T) {
		a := GenerateQueryCacheKey("properties", map[string]string{"city_id": "3", "page": "2", "search": "villa"})
		b := GenerateQueryCacheKey("properties", map[string]string{"search": "villa", "city_id": "3", "page": "2"})
		assert.Equal(t, a, b)
	})

	t.Run("different values get different keys", func(t *testing.T) {
		a := GenerateQueryCacheKey("properties", map[string]string{"page": "1"})
		b := GenerateQueryCacheKey("properties", map[string]string{"page": "2"})
		assert.NotEqual(t, a, b)
	})

	t.Run("key carries the prefix and a hex digest", func(t *testing.T) {
		key := GenerateQueryCacheKey("properties", map[string]string{"page": "1"})
		assert.True(t, strings.HasPrefix(key, "properties:"))
		assert.Len(t, strings.TrimPrefix(key, "properties:"), 32)
	})

	t.Run("no parameters still yields a stable key", func(t *testing.T) {
		a := GenerateQueryCacheKey("properties", map[string]string{})
		b := GenerateQueryCacheKey("properties", nil)
		assert.Equal(t, a, b)
	})
}
