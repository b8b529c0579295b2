package models

import "github.com/mmcloughlin/geohash"

// LocationType classifies a saved place
type LocationType string

const (
	LocationTypeHome     LocationType = "home"
	LocationTypeWork     LocationType = "work"
	LocationTypeFavorite LocationType = "favorite"
	LocationTypeRecent   LocationType = "recent"
)

// geohashPrecision gives cells of roughly 1.2km x 0.6km, enough to route dispatch events
const geohashPrecision = 6

// Location is a value object passed between the UI and the booking services.
// It is never mutated after construction.
type Location struct {
	ID        string       `json:"id,omitempty"`
	Name      string       `json:"name"`
	Address   string       `json:"address,omitempty"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Type      LocationType `json:"type,omitempty"`
}

// NewLocation builds a location from coordinates
func NewLocation(name, address string, latitude, longitude float64) Location {
	return Location{
		Name:      name,
		Address:   address,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// HasCoordinates reports whether the location carries a usable position
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// WithCoordinates returns a copy positioned at the given coordinates
func (l Location) WithCoordinates(latitude, longitude float64) Location {
	l.Latitude = latitude
	l.Longitude = longitude
	return l
}

// Geohash encodes the location into a dispatch cell
func (l Location) Geohash() string {
	return geohash.EncodeWithPrecision(l.Latitude, l.Longitude, geohashPrecision)
}

// Label returns the most human friendly description of the location
func (l Location) Label() string {
	if l.Address != "" {
		return l.Address
	}
	return l.Name
}
