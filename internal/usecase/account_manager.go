package usecase

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"github.com/google/uuid"
)

// AccountManager encapsulates account creation and credential checking.
// Like LocationWriter it operates on a caller-supplied repository so the
// work can join the caller's transaction.
type AccountManager interface {
	// CreateAccount validates the input, normalizes the email, hashes the
	// password, and persists a new account with the given role.
	CreateAccount(ctx context.Context, accRepo repository.AccountRepository, input *CreateAccountInput, role entity.Role) (*entity.Account, error)

	// Authenticate verifies email/password credentials and returns the
	// matching active account.
	Authenticate(ctx context.Context, accRepo repository.AccountRepository, email, password string) (*entity.Account, error)

	// UpdateAccount applies a partial credential update: email is
	// normalized, a new password is length-checked and re-hashed.
	UpdateAccount(ctx context.Context, accRepo repository.AccountRepository, accountID uuid.UUID, input *UpdateAccountInput) error

	// SetPassword length-checks, hashes, and persists a new password.
	SetPassword(ctx context.Context, accRepo repository.AccountRepository, account *entity.Account, newPassword string) error
}

// --- Input DTOs ---

// CreateAccountInput defines the credential data for a new account.
type CreateAccountInput struct {
	Handle   string `json:"handle" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountInput defines a partial update of account credentials.
// Only non-nil fields are applied.
type UpdateAccountInput struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty"`
}
