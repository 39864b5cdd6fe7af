package service

import "roster/internal/domain/entity"

// ResetTokenService issues and verifies single-purpose password reset tokens.
// Tokens are bound to the account's current password hash, so changing the
// password invalidates every token issued before the change.
type ResetTokenService interface {
	// Generate creates a reset token for the account.
	Generate(account *entity.Account) (string, error)

	// Verify checks the token's signature, expiry, and password-hash binding.
	// It returns an error when any of those checks fail.
	Verify(account *entity.Account, token string) error
}
