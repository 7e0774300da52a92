package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsForRadius(t *testing.T) {
	t.Parallel()

	t.Run("box contains the center and is symmetric around it", func(t *testing.T) {
		b, err := BoundsForRadius(31.5, 74.3, 10)
		require.NoError(t, err)
		require.True(t, b.LngBounded)

		assert.Less(t, b.LatMin, 31.5)
		assert.Greater(t, b.LatMax, 31.5)
		assert.Less(t, b.LngMin, 74.3)
		assert.Greater(t, b.LngMax, 74.3)

		assert.InDelta(t, 31.5-b.LatMin, b.LatMax-31.5, 1e-9)
		assert.InDelta(t, 74.3-b.LngMin, b.LngMax-74.3, 1e-9)
	})

	t.Run("latitude span is radius over 111 km per degree", func(t *testing.T) {
		b, err := BoundsForRadius(31.5, 74.3, 10)
		require.NoError(t, err)
		assert.InDelta(t, 10.0/111.0, b.LatMax-31.5, 1e-9)
	})

	t.Run("longitude span widens away from the equator", func(t *testing.T) {
		atEquator, err := BoundsForRadius(0, 10, 10)
		require.NoError(t, err)
		atSixty, err := BoundsForRadius(60, 10, 10)
		require.NoError(t, err)
		assert.Greater(t, atSixty.LngMax-atSixty.LngMin, atEquator.LngMax-atEquator.LngMin)
	})

	t.Run("point 5km north is inside, 50km north is outside a 10km box", func(t *testing.T) {
		b, err := BoundsForRadius(31.5, 74.3, 10)
		require.NoError(t, err)

		nearLat := 31.5 + 5.0/111.0
		farLat := 31.5 + 50.0/111.0
		assert.True(t, nearLat >= b.LatMin && nearLat <= b.LatMax)
		assert.False(t, farLat >= b.LatMin && farLat <= b.LatMax)
	})

	t.Run("pole latitude leaves longitude unbounded", func(t *testing.T) {
		b, err := BoundsForRadius(90, 74.3, 10)
		require.NoError(t, err)
		assert.False(t, b.LngBounded)
		assert.InDelta(t, 90-10.0/111.0, b.LatMin, 1e-9)

		b, err = BoundsForRadius(-90, 0, 10)
		require.NoError(t, err)
		assert.False(t, b.LngBounded)
	})

	t.Run("non-finite inputs are rejected", func(t *testing.T) {
		for _, args := range [][3]float64{
			{math.NaN(), 74.3, 10},
			{31.5, math.Inf(1), 10},
			{31.5, 74.3, math.Inf(-1)},
		} {
			_, err := BoundsForRadius(args[0], args[1], args[2])
			assert.ErrorIs(t, err, ErrInvalidArgument)
		}
	})
}
