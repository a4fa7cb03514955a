package domain

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ZeroCoordinates is the "unresolved" sentinel: the geocoder found no match.
var ZeroCoordinates = Coordinates{}

// CountryCenter is the "unknown but not zero" fallback, the approximate
// geographic center of Brazil. Returned when the geocoder is unreachable.
var CountryCenter = Coordinates{Lat: -14.2350, Lng: -51.9253}

// IsZero reports whether c is the unresolved sentinel.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}
