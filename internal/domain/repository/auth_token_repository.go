package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthTokenNotFound is a domain-specific error returned when an auth token is not found.
var ErrAuthTokenNotFound = errors.New("auth token not found")

// AuthTokenRepository defines the standard operations for login token persistence.
type AuthTokenRepository interface {
	// FindByKey retrieves a token by its opaque key.
	FindByKey(ctx context.Context, key string) (*entity.AuthToken, error)

	// FindByAccountID retrieves the live token of an account, if any.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.AuthToken, error)

	// Create persists a new token.
	Create(ctx context.Context, token *entity.AuthToken) error

	// DeleteByAccountID removes the account's live token.
	// Returns ErrAuthTokenNotFound when the account holds no token.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
}
