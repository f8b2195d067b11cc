// Package geo holds great-circle helpers used by search and location.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"spotshare/internal/domain/entity"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DistanceKm returns the Haversine great-circle distance between two points.
// The result is symmetric and 0 for identical points.
func DistanceKm(a, b entity.GeoPoint) float64 {
	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// FormatDistance renders a distance for display: whole meters while they
// round below 1000, otherwise kilometers with one decimal.
func FormatDistance(km float64) string {
	if m := math.Round(km * 1000); m < 1000 {
		return fmt.Sprintf("%d m", int(m))
	}

	return fmt.Sprintf("%.1f km", km)
}

// ToOrbPoint converts a GeoPoint to an orb.Point (lon, lat order).
func ToOrbPoint(p entity.GeoPoint) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
