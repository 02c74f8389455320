package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDistance_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{12.9716, 77.5946},
		{-33.8688, 151.2093},
		{90, 180},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, ComputeDistance(p[0], p[1], p[0], p[1]))
	}
}

func TestComputeDistance_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{12.9716, 77.5946, 12.9352, 77.6245},
		{51.5074, -0.1278, 48.8566, 2.3522},
		{-33.8688, 151.2093, 40.7128, -74.0060},
	}
	for _, p := range pairs {
		assert.Equal(t,
			ComputeDistance(p[0], p[1], p[2], p[3]),
			ComputeDistance(p[2], p[3], p[0], p[1]),
		)
	}
}

func TestComputeDistance_KnownValues(t *testing.T) {
	// Лондон - Париж ~343.56 км
	d := ComputeDistance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 343.56, d, 0.5)

	// Один градус по меридиану ~111.19 км
	assert.Equal(t, 111.19, ComputeDistance(0, 0, 1, 0))
}

func TestComputeDistance_RoundedToTwoDecimals(t *testing.T) {
	d := ComputeDistance(12.9716, 77.5946, 12.9352, 77.6245)
	assert.Equal(t, d, math.Round(d*100)/100)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0m", FormatDistance(0))
	assert.Equal(t, "450m", FormatDistance(0.45))
	assert.Equal(t, "999m", FormatDistance(0.999))
	assert.Equal(t, "1km", FormatDistance(1))
	assert.Equal(t, "2.5km", FormatDistance(2.5))
	assert.Equal(t, "12.34km", FormatDistance(12.34))
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(0, 0))
	assert.True(t, IsValidCoordinate(-90, 180))
	assert.False(t, IsValidCoordinate(91, 0))
	assert.False(t, IsValidCoordinate(0, -181))
	assert.False(t, IsValidCoordinate(math.NaN(), 0))
}
