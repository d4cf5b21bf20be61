package entities

import "relay/pkg/geo"

type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceKm - расстояние по прямой до other.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	return geo.DistanceKm(c.Lat, c.Lon, other.Lat, other.Lon)
}

func (c Coordinates) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

type Location struct {
	Address     string
	Coordinates Coordinates
}
