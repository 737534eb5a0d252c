package internals

import (
	"math"

	"github.com/golang/geo/s2"

	"carbon-travel-server/refdata"
)

const earthRadiusKm = 6371.0

// haul boundaries in km
const (
	shortHaulLimit  = 1500
	mediumHaulLimit = 4000
)

// ComputeDistance returns the great-circle distance in km between two
// airports, rounded to one decimal.
func ComputeDistance(origin, destination string) (float64, error) {
	tables := refdata.Get()
	from, err := tables.Airport(origin)
	if err != nil {
		return 0, err
	}
	to, err := tables.Airport(destination)
	if err != nil {
		return 0, err
	}

	startLoc := s2.LatLngFromDegrees(from.Latitude, from.Longitude)
	endLoc := s2.LatLngFromDegrees(to.Latitude, to.Longitude)
	// LatLng.Distance is the haversine central angle
	km := startLoc.Distance(endLoc).Radians() * earthRadiusKm

	return Round(km, 1), nil
}

func HaulType(distance float64) string {
	if distance < shortHaulLimit {
		return refdata.HaulShort
	} else if distance <= mediumHaulLimit {
		return refdata.HaulMedium
	}
	return refdata.HaulLong
}

func Round(value float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}
