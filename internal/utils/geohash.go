package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/troski/troski/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// CalculateDistance returns the great-circle distance between two locations in kilometers (Haversine)
func CalculateDistance(from, to models.Location) float64 {
	lat1 := toRadians(from.Latitude)
	lon1 := toRadians(from.Longitude)
	lat2 := toRadians(to.Latitude)
	lon2 := toRadians(to.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundTo rounds v to the given number of decimals
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// SameCell reports whether two locations fall in the same or an adjacent dispatch cell
func SameCell(a, b models.Location) bool {
	ha, hb := a.Geohash(), b.Geohash()
	if ha == hb {
		return true
	}
	for _, n := range geohash.Neighbors(ha) {
		if n == hb {
			return true
		}
	}
	return false
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
