package geo

import (
	"github.com/golang/geo/s2"
)

const EarthRadiusMeters = 6371008.8

// DistanceMeters is the great-circle distance between two WGS84 points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// WithinRadius reports whether the point lies inside the circle around the center.
func WithinRadius(centerLat, centerLon, lat, lon, radiusMeters float64) bool {
	return DistanceMeters(centerLat, centerLon, lat, lon) <= radiusMeters
}

// Valid rejects out-of-range and (0,0) coordinates, which upstream APIs use for "unknown".
func Valid(lat, lon float64) bool {
	if lat == 0 && lon == 0 {
		return false
	}
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}
