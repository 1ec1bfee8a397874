package spatial

import (
	"github.com/golang/geo/s2"
)

// Earth's mean radius.
const (
	EarthRadiusKm     = 6371.0
	EarthRadiusMeters = 6371000.0
)

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the haversine formula on a spherical Earth. Coordinate
// ranges must already be validated by the caller; NaN inputs propagate.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// SpeedKmh calculates speed in km/h from a distance and elapsed time.
// Non-positive elapsed time (duplicate or clock-resolution timestamps)
// yields 0 rather than an infinite speed; manufacturing impossible speeds
// from timestamp artifacts would poison the velocity analysis downstream.
func SpeedKmh(distanceKm, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return distanceKm / (elapsedSeconds / 3600.0)
}
