// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/service"
)

// resetTokenService issues HS256-signed password reset tokens. The signing
// key mixes the server secret with a fingerprint of the account's current
// password hash, so every token dies the moment the password changes.
type resetTokenService struct {
	secret   string
	tokenTTL time.Duration
}

// NewResetTokenService is the constructor for resetTokenService.
func NewResetTokenService(cfg *config.Config) (service.ResetTokenService, error) {
	if cfg.SecretKey.Reset == "" {
		return nil, errors.New("reset token secret must be provided")
	}

	return &resetTokenService{
		secret:   cfg.SecretKey.Reset,
		tokenTTL: cfg.PasswordReset.TokenTTL,
	}, nil
}

// signingKey derives the per-account signing key from the server secret and
// the current password hash.
func (s *resetTokenService) signingKey(account *entity.Account) []byte {
	sum := sha256.Sum256([]byte(s.secret + ":" + account.PasswordHash))

	return []byte(hex.EncodeToString(sum[:]))
}

// Generate creates a reset token for the account.
func (s *resetTokenService) Generate(account *entity.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": account.ID.String(),        // Subject (who the token is for)
		"iat": now.Unix(),                 // Issued At
		"exp": now.Add(s.tokenTTL).Unix(), // Expiration Time
		"typ": "password_reset",           // Single-purpose token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.signingKey(account))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign reset token")
	}

	return signed, nil
}

// Verify checks the token's signature, expiry, and password-hash binding.
// A token issued before a password change fails the signature check because
// the signing key no longer matches.
func (s *resetTokenService) Verify(account *entity.Account, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey(account), nil
	})
	if err != nil {
		return errors.Wrap(err, "invalid reset token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid reset token claims")
	}

	if typ, _ := claims["typ"].(string); typ != "password_reset" {
		return errors.New("not a password reset token")
	}
	if sub, _ := claims["sub"].(string); sub != account.ID.String() {
		return errors.New("reset token subject mismatch")
	}

	return nil
}
