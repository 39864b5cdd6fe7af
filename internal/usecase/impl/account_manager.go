// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountManager implements the AccountManager interface.
type accountManager struct {
	hasher            service.PasswordHasher
	minPasswordLength int
	logger            *slog.Logger
}

// NewAccountManager is the constructor for accountManager.
func NewAccountManager(
	hasher service.PasswordHasher,
	minPasswordLength int,
	logger *slog.Logger,
) usecase.AccountManager {
	return &accountManager{
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

// normalizeEmail lower-cases the domain part of an email address.
// The local part is kept as entered.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}

// CreateAccount validates the input, normalizes the email, hashes the
// password, and persists a new account with the given role.
func (m *accountManager) CreateAccount(ctx context.Context, accRepo repository.AccountRepository, input *usecase.CreateAccountInput, role entity.Role) (*entity.Account, error) {
	m.logger.Debug("Creating account", "email", input.Email, "role", role)

	if input.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	}
	if len(input.Password) < m.minPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrPasswordTooShort, "account creation failed")
	}

	email := normalizeEmail(input.Email)

	// Reject a taken email up front; the unique constraints still backstop
	// handle collisions and concurrent registrations.
	_, err := accRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "account creation failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	hashedPassword, err := m.hasher.Hash(input.Password)
	if err != nil {
		m.logger.Error("Failed to hash password during account creation", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "account creation failed")
	}

	account := &entity.Account{
		Handle:       input.Handle,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := accRepo.Create(ctx, account); err != nil {
		return nil, errors.WithStack(err)
	}

	return account, nil
}

// Authenticate verifies email/password credentials and returns the matching active account.
func (m *accountManager) Authenticate(ctx context.Context, accRepo repository.AccountRepository, email, password string) (*entity.Account, error) {
	account, err := accRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !m.hasher.Check(password, account.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	if !account.IsActive {
		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "authentication failed")
	}

	return account, nil
}

// UpdateAccount applies a partial credential update to an existing account.
func (m *accountManager) UpdateAccount(ctx context.Context, accRepo repository.AccountRepository, accountID uuid.UUID, input *usecase.UpdateAccountInput) error {
	account, err := accRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account update failed")
		}

		return errors.Wrap(err, "failed to find account")
	}

	if input.Email != nil {
		account.Email = normalizeEmail(*input.Email)
	}

	if input.Password != nil {
		if len(*input.Password) < m.minPasswordLength {
			return errors.Wrap(domainerrors.ErrPasswordTooShort, "account update failed")
		}
		hashed, err := m.hasher.Hash(*input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "account update failed")
		}
		account.PasswordHash = hashed
	}

	if err := accRepo.Update(ctx, account); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// SetPassword checks the minimum length, hashes the new password, and persists it.
func (m *accountManager) SetPassword(ctx context.Context, accRepo repository.AccountRepository, account *entity.Account, newPassword string) error {
	if len(newPassword) < m.minPasswordLength {
		return errors.Wrap(domainerrors.ErrPasswordTooShort, "password change failed")
	}

	hashed, err := m.hasher.Hash(newPassword)
	if err != nil {
		m.logger.Error("Failed to hash password", "error", err)

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "password change failed")
	}
	account.PasswordHash = hashed

	if err := accRepo.Update(ctx, account); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
