package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParamsCombinators(t *testing.T) {
	t.Parallel()

	p := Params{
		"bedrooms_min": "3",
		"state_id":     "12",
		"latitude":     "31.5",
		"nan":          "NaN",
		"inf":          "+Inf",
		"date":         "2024-03-05",
		"bad_date":     "05/03/2024",
		"empty":        "",
		"garbage":      "abc",
		"property_for": "Rent",
	}

	t.Run("int", func(t *testing.T) {
		v, ok := p.Int("bedrooms_min")
		assert.True(t, ok)
		assert.Equal(t, 3, v)

		_, ok = p.Int("garbage")
		assert.False(t, ok)
		_, ok = p.Int("empty")
		assert.False(t, ok)
		_, ok = p.Int("missing")
		assert.False(t, ok)
	})

	t.Run("int64", func(t *testing.T) {
		v, ok := p.Int64("state_id")
		assert.True(t, ok)
		assert.Equal(t, int64(12), v)
	})

	t.Run("decimal", func(t *testing.T) {
		v, ok := p.Decimal("latitude")
		assert.True(t, ok)
		assert.Equal(t, 31.5, v)

		// ParseFloat accepts these; a filter cannot use them.
		_, ok = p.Decimal("nan")
		assert.False(t, ok)
		_, ok = p.Decimal("inf")
		assert.False(t, ok)
		_, ok = p.Decimal("garbage")
		assert.False(t, ok)
	})

	t.Run("date", func(t *testing.T) {
		v, ok := p.Date("date")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), v)

		_, ok = p.Date("bad_date")
		assert.False(t, ok)
	})

	t.Run("enum is case-insensitive and canonicalizes", func(t *testing.T) {
		v, ok := p.Enum("property_for", []string{"rent", "sell"})
		assert.True(t, ok)
		assert.Equal(t, "rent", v)

		_, ok = p.Enum("garbage", []string{"rent", "sell"})
		assert.False(t, ok)
	})
}

func TestParamsPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    Params
		wantSkip  int64
		wantLimit int64
	}{
		{"defaults", Params{}, 0, 10},
		{"second page", Params{"page": "2"}, 10, 10},
		{"custom size", Params{"page": "3", "page_size": "25"}, 50, 25},
		{"size capped at 100", Params{"page_size": "500"}, 0, 100},
		{"invalid values fall back", Params{"page": "-1", "page_size": "x"}, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := tt.params.Pagination()
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
