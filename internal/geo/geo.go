// Package geo provides the distance and coordinate-privacy primitives used
// by discovery and chat location messages.
package geo

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean earth radius used for haversine distances.
const earthRadiusKm = 6371.0

// metersPerDegreeLat approximates one degree of latitude in meters.
const metersPerDegreeLat = 111320.0

// DistanceKm returns the haversine great-circle distance in kilometers
// between two WGS84 coordinates.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius reports whether the two coordinates lie within radiusKm of
// each other. Points exactly on the boundary are included.
func WithinRadius(lat1, lon1, lat2, lon2, radiusKm float64) bool {
	return DistanceKm(lat1, lon1, lat2, lon2) <= radiusKm
}

// ValidCoordinate reports whether lat/lon form a valid WGS84 coordinate.
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Fuzz displaces a point by a uniformly random offset of up to radiusMeters,
// so displayed coordinates never reveal a user's exact position. The true
// location stays in the database untouched.
func Fuzz(point orb.Point, radiusMeters float64) orb.Point {
	lon, lat := point.Lon(), point.Lat()

	distance := rand.Float64() * radiusMeters / metersPerDegreeLat
	angle := rand.Float64() * 2 * math.Pi

	fuzzedLat := lat + distance*math.Cos(angle)
	// Longitude degrees shrink with latitude.
	fuzzedLon := lon + distance*math.Sin(angle)/math.Cos(radians(lat))

	return orb.Point{fuzzedLon, fuzzedLat}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
