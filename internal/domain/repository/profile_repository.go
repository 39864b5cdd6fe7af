package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// PersonProfileRepository defines the standard operations for person profile persistence.
// The same interface serves both the user and admin variants; the kind argument
// selects which table the implementation addresses.
type PersonProfileRepository interface {
	// FindByAccountID retrieves the profile of the given kind owned by the account,
	// with its location preloaded.
	FindByAccountID(ctx context.Context, kind entity.Role, accountID uuid.UUID) (*entity.PersonProfile, error)

	// FindAll retrieves every profile of the given kind, locations preloaded.
	FindAll(ctx context.Context, kind entity.Role) ([]*entity.PersonProfile, error)

	// Create persists a new profile entity of the given kind.
	Create(ctx context.Context, kind entity.Role, profile *entity.PersonProfile) error

	// Update modifies an existing profile entity of the given kind.
	Update(ctx context.Context, kind entity.Role, profile *entity.PersonProfile) error
}

// BusinessProfileRepository defines the standard operations for business profile persistence.
type BusinessProfileRepository interface {
	// FindByAccountID retrieves the business profile owned by the account,
	// with its location preloaded.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.BusinessProfile, error)

	// FindAll retrieves every business profile, locations preloaded.
	FindAll(ctx context.Context) ([]*entity.BusinessProfile, error)

	// Create persists a new business profile entity.
	Create(ctx context.Context, profile *entity.BusinessProfile) error

	// Update modifies an existing business profile entity.
	Update(ctx context.Context, profile *entity.BusinessProfile) error
}
