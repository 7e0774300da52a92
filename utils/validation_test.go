package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestValidCoordinatePair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lat  *float64
		lng  *float64
		want bool
	}{
		{"both absent", nil, nil, true},
		{"both present in range", ptr(31.5204), ptr(74.3587), true},
		{"latitude only", ptr(31.5), nil, false},
		{"longitude only", nil, ptr(74.3), false},
		{"latitude at north pole", ptr(90), ptr(0), true},
		{"latitude beyond range", ptr(90.1), ptr(0), false},
		{"longitude at antimeridian", ptr(0), ptr(-180), true},
		{"longitude beyond range", ptr(0), ptr(180.5), false},
		{"NaN latitude", ptr(math.NaN()), ptr(0), false},
		{"infinite longitude", ptr(0), ptr(math.Inf(1)), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidCoordinatePair(tt.lat, tt.lng))
		})
	}
}
