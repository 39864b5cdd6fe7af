// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location is a physical place owned one-to-one by a profile.
// Every segment is optional; coordinates are either both present
// (geocoder hit at creation time) or both absent.
type Location struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the location.
	Street    string    // Street portion of the address, may be empty.
	City      string    // City portion of the address, may be empty.
	State     string    // State or province, may be empty.
	Country   string    // Country, may be empty.
	Latitude  *float64  // Geographic latitude, nil when geocoding found no match.
	Longitude *float64  // Geographic longitude, nil when geocoding found no match.
	CreatedAt time.Time // Timestamp of when this location was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// FullAddress joins all four segments with ", " for geocoder lookup.
// Empty segments are kept in place, so a location with only a city
// yields ", Taipei, , ". This matches the stored historical data.
func (l *Location) FullAddress() string {
	return strings.Join([]string{l.Street, l.City, l.State, l.Country}, ", ")
}

// HasCoordinates reports whether geocoding resolved this location.
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
