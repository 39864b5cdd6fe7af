// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
)

// LocationWriter encapsulates the create/update rules for profile locations,
// including the geocoding step. It operates on a repository passed in by the
// caller so the work can join the caller's transaction.
type LocationWriter interface {
	// Create persists a new location. The concatenated address is geocoded;
	// a miss or provider timeout stores the location without coordinates,
	// while any other geocoder failure aborts the operation.
	Create(ctx context.Context, locRepo repository.LocationRepository, input *LocationInput) (*entity.Location, error)

	// Update merges the provided fields into an existing location.
	// Coordinates are not recomputed.
	Update(ctx context.Context, locRepo repository.LocationRepository, existing *entity.Location, input *UpdateLocationInput) error
}

// --- Input DTOs ---

// LocationInput defines the data required to create a location.
// Every segment is optional.
type LocationInput struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// UpdateLocationInput defines a partial location update. Only non-nil fields are applied.
type UpdateLocationInput struct {
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
}
