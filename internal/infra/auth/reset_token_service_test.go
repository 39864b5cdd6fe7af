package auth

import (
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResetTokenService(t *testing.T, ttl time.Duration) *resetTokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Reset = "test-secret"
	cfg.PasswordReset = &config.PasswordResetConfig{TokenTTL: ttl}

	svc, err := NewResetTokenService(cfg)
	require.NoError(t, err)

	return svc.(*resetTokenService)
}

func TestResetTokenService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.PasswordReset = &config.PasswordResetConfig{TokenTTL: time.Hour}

	_, err := NewResetTokenService(cfg)
	assert.Error(t, err)
}

func TestResetTokenService_GenerateAndVerify(t *testing.T) {
	svc := newTestResetTokenService(t, time.Hour)

	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}

	token, err := svc.Generate(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(account, token))
}

func TestResetTokenService_PasswordChangeInvalidatesToken(t *testing.T) {
	svc := newTestResetTokenService(t, time.Hour)

	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}

	token, err := svc.Generate(account)
	require.NoError(t, err)

	// Changing the password rotates the signing key, so the old token
	// no longer verifies.
	account.PasswordHash = "new_hash"
	assert.Error(t, svc.Verify(account, token))
}

func TestResetTokenService_ExpiredToken(t *testing.T) {
	svc := newTestResetTokenService(t, -time.Minute)

	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}

	token, err := svc.Generate(account)
	require.NoError(t, err)

	assert.Error(t, svc.Verify(account, token))
}

func TestResetTokenService_SubjectMismatch(t *testing.T) {
	svc := newTestResetTokenService(t, time.Hour)

	issuedFor := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}
	someoneElse := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}

	token, err := svc.Generate(issuedFor)
	require.NoError(t, err)

	assert.Error(t, svc.Verify(someoneElse, token))
}

func TestResetTokenService_GarbageToken(t *testing.T) {
	svc := newTestResetTokenService(t, time.Hour)

	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}

	assert.Error(t, svc.Verify(account, "not-a-jwt"))
}
