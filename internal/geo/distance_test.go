package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKmZeroForIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{45.5, -122.6},
		{-33.86, 151.21},
		{89.9, 179.9},
	}

	for _, p := range points {
		assert.Zero(t, DistanceKm(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	d1 := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
	d2 := DistanceKm(13.0827, 80.2707, 12.9716, 77.5946)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceKmOneDegreeAtEquator(t *testing.T) {
	// One degree of latitude at the equator is ~111.19 km
	d := DistanceKm(0, 0, 1, 0)
	assert.InEpsilon(t, 111.19, d, 0.005)
}

func TestValidateCoordinate(t *testing.T) {
	require.NoError(t, ValidateCoordinate(0, 0))
	require.NoError(t, ValidateCoordinate(-90, 180))
	require.NoError(t, ValidateCoordinate(90, -180))

	assert.ErrorIs(t, ValidateCoordinate(math.NaN(), 0), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateCoordinate(0, math.Inf(1)), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateCoordinate(90.1, 0), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateCoordinate(0, -180.1), ErrInvalidArgument)
}

func TestValidateRadiusKm(t *testing.T) {
	require.NoError(t, ValidateRadiusKm(50))
	require.NoError(t, ValidateRadiusKm(0.5))
	require.NoError(t, ValidateRadiusKm(500))

	assert.ErrorIs(t, ValidateRadiusKm(0), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateRadiusKm(-25), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateRadiusKm(math.NaN()), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateRadiusKm(500.1), ErrInvalidArgument)
}
