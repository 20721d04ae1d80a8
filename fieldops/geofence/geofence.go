package geofence

import (
	"math"

	"ambe.com/fieldops/fieldops/model"
)

// EarthRadiusMeters is the mean radius of the spherical-Earth approximation.
const EarthRadiusMeters = 6371000.0

// Result classifies a position against a site's geofence.
type Result struct {
	DistanceMeters float64
	InRange        bool
}

// Distance returns the great-circle distance in meters between two points
// using the haversine formula. Inputs must be finite decimal degrees; a
// missing fix is the caller's problem and must never be passed as (0, 0).
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Classify evaluates a position against the site geofence. The boundary is
// inclusive: a point exactly at radius distance is in range.
func Classify(pos model.GeoPoint, site model.Site) Result {
	d := Distance(pos.Lat, pos.Lng, site.Latitude, site.Longitude)
	return Result{
		DistanceMeters: d,
		InRange:        d <= site.GeofenceRadius,
	}
}
