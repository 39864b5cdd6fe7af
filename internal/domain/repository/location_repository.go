package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is a domain-specific error returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the standard operations for location persistence.
type LocationRepository interface {
	// FindByID retrieves a single location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Create persists a new location entity to the storage.
	Create(ctx context.Context, location *entity.Location) error

	// Update modifies an existing location entity in the storage.
	Update(ctx context.Context, location *entity.Location) error
}
