package geo

import (
	"math"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// arrivedThresholdKm treats origin and destination as coinciding.
const arrivedThresholdKm = 0.1

// DistanceKm computes the great-circle distance between two points in
// kilometers using the haversine formula.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Progress derives a 0-100 delivery percentage from the straight-line
// distances between origin, destination and the current position. It is a
// geometric approximation: routes with significant detours can report more
// progress than has actually been driven.
func Progress(origin, destination, current domain.Coordinates) int {
	if origin.IsZero() || destination.IsZero() {
		return 0
	}
	total := DistanceKm(origin, destination)
	remaining := DistanceKm(current, destination)

	if total <= arrivedThresholdKm {
		return 100
	}
	pct := (1 - remaining/total) * 100
	return domain.ClampProgress(int(math.Round(pct)))
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
