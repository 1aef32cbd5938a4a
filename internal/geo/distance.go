package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used for distance conversion
const EarthRadiusKm = 6371.0

// ErrInvalidArgument indicates a caller bug: non-finite or out-of-range
// coordinates, or a non-positive radius
var ErrInvalidArgument = errors.New("invalid argument")

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the haversine formula
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// ValidateCoordinate checks that a latitude/longitude pair is finite and
// within WGS84 bounds
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("%w: non-finite coordinate (%v, %v)", ErrInvalidArgument, lat, lon)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidArgument, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidArgument, lon)
	}
	return nil
}

// MaxSearchRadiusKm bounds how far a single nearby-lakes query may reach
const MaxSearchRadiusKm = 500.0

// ValidateRadiusKm checks that a search radius is finite, positive, and
// describes a valid spherical cap no larger than the configured bound
func ValidateRadiusKm(radiusKm float64) error {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return fmt.Errorf("%w: radius %v must be a positive number of kilometers", ErrInvalidArgument, radiusKm)
	}
	searchCap := s2.CapFromCenterAngle(s2.PointFromLatLng(s2.LatLngFromDegrees(0, 0)), s1.Angle(radiusKm/EarthRadiusKm))
	if !searchCap.IsValid() || radiusKm > MaxSearchRadiusKm {
		return fmt.Errorf("%w: radius %v exceeds maximum of %v km", ErrInvalidArgument, radiusKm, MaxSearchRadiusKm)
	}
	return nil
}
