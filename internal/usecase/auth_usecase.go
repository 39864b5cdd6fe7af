package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUsecase defines the login token lifecycle and password management operations.
type AuthUsecase interface {
	// Login verifies credentials and returns the account's persisted token,
	// creating one on first login. Repeated logins return the same key.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// AccountForToken resolves an opaque token key to its active account.
	AccountForToken(ctx context.Context, key string) (*entity.Account, error)

	// Logout deletes the account's live token. A second logout fails.
	Logout(ctx context.Context, accountID uuid.UUID) error

	// ChangePassword re-hashes the password after checking the old one.
	ChangePassword(ctx context.Context, accountID uuid.UUID, input *ChangePasswordInput) error

	// ForgotPassword issues a reset token and mails a reset link.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword verifies a reset token and sets a new password.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}

// --- Input DTOs ---

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ForgotPasswordInput identifies the account to send a reset link to.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput carries the reset link parameters and the new password.
type ResetPasswordInput struct {
	UID         string `json:"uid" validate:"required"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token   string          `json:"token"`
	Account *entity.Account `json:"account"`
}
