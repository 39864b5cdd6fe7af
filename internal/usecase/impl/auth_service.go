package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
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

// authTokenKeyBytes is the entropy of an opaque login token key.
// The key is the hex encoding, so 40 characters on the wire.
const authTokenKeyBytes = 20

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accounts         usecase.AccountManager
	hasher           service.PasswordHasher
	resetTokens      service.ResetTokenService
	mailer           service.Mailer
	resetLinkBaseURL string
	logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	accounts usecase.AccountManager,
	hasher service.PasswordHasher,
	resetTokens service.ResetTokenService,
	mailer service.Mailer,
	resetLinkBaseURL string,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:        txManager,
		accounts:         accounts,
		hasher:           hasher,
		resetTokens:      resetTokens,
		mailer:           mailer,
		resetLinkBaseURL: resetLinkBaseURL,
		logger:           logger,
	}
}

// generateTokenKey produces a random hex token key.
func generateTokenKey() (string, error) {
	buf := make([]byte, authTokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate token key")
	}

	return hex.EncodeToString(buf), nil
}

// Login verifies credentials and returns the account's persisted token.
// A first login creates the token; every later login returns the same key.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	var loggedInAccount *entity.Account
	var tokenKey string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accRepo := repoFactory.NewAccountRepository()
		tokenRepo := repoFactory.NewAuthTokenRepository()

		account, err := srv.accounts.Authenticate(ctx, accRepo, input.Email, input.Password)
		if err != nil {
			return err
		}

		token, err := tokenRepo.FindByAccountID(ctx, account.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrAuthTokenNotFound) {
				return errors.Wrap(err, "failed to find auth token")
			}

			key, err := generateTokenKey()
			if err != nil {
				return err
			}
			token = &entity.AuthToken{
				Key:       key,
				AccountID: account.ID,
			}
			if err := tokenRepo.Create(ctx, token); err != nil {
				return errors.WithStack(err)
			}
		}

		loggedInAccount = account
		tokenKey = token.Key

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	srv.logger.Debug("Login succeeded", "accountID", loggedInAccount.ID)

	return &usecase.LoginOutput{
		Token:   tokenKey,
		Account: loggedInAccount,
	}, nil
}

// AccountForToken resolves an opaque token key to its active account.
func (srv *authService) AccountForToken(ctx context.Context, key string) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewAuthTokenRepository()
		accRepo := repoFactory.NewAccountRepository()

		token, err := tokenRepo.FindByKey(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrAuthTokenNotFound) {
				return errors.Wrap(domainerrors.ErrNotAuthenticated, "unknown token")
			}

			return errors.Wrap(err, "failed to find auth token")
		}

		found, err := accRepo.FindByID(ctx, token.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to find token account")
		}
		if !found.IsActive {
			return errors.Wrap(domainerrors.ErrAccountInactive, "token account is inactive")
		}
		account = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token")
	}

	return account, nil
}

// Logout deletes the account's live token. A second logout fails because
// the token is already gone.
func (srv *authService) Logout(ctx context.Context, accountID uuid.UUID) error {
	srv.logger.Debug("Logging out", "accountID", accountID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewAuthTokenRepository()

		if err := tokenRepo.DeleteByAccountID(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrAuthTokenNotFound) {
				return errors.Wrap(domainerrors.ErrAuthTokenNotFound, "logout failed")
			}

			return errors.Wrap(err, "failed to delete auth token")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Logout failed", "accountID", accountID, "error", err.Error())

		return errors.Wrap(err, "failed to execute logout transaction")
	}

	return nil
}

// ChangePassword re-hashes the password after checking the old one.
// Outstanding reset tokens stop verifying once the hash changes.
func (srv *authService) ChangePassword(ctx context.Context, accountID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.logger.Info("Changing password", "accountID", accountID)

	if input.NewPassword != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "password change failed")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accRepo := repoFactory.NewAccountRepository()

		account, err := accRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "password change failed")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if !srv.hasher.Check(input.OldPassword, account.PasswordHash) {
			return errors.Wrap(domainerrors.ErrWrongOldPassword, "password change failed")
		}

		return srv.accounts.SetPassword(ctx, accRepo, account, input.NewPassword)
	})

	if err != nil {
		srv.logger.Warn("Password change failed", "accountID", accountID, "error", err.Error())

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	return nil
}

// ForgotPassword issues a reset token bound to the account's current password
// hash and mails the reset link. An unknown email is reported as not found.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.logger.Info("Password reset requested", "email", input.Email)

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accRepo := repoFactory.NewAccountRepository()

		// Lookup uses the same normalization as registration and login, so a
		// mixed-case domain still finds the account.
		found, err := accRepo.FindByEmail(ctx, normalizeEmail(input.Email))
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "password reset failed")
			}

			return errors.Wrap(err, "failed to find account by email")
		}
		account = found

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute password reset lookup")
	}

	token, err := srv.resetTokens.Generate(account)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	uid := base64.RawURLEncoding.EncodeToString([]byte(account.ID.String()))
	link := fmt.Sprintf("%s/%s/%s", strings.TrimRight(srv.resetLinkBaseURL, "/"), uid, token)

	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p><a href=%q>Reset your password</a></p>"+
			"<p>If you did not request this, you can ignore this message.</p>",
		link,
	)
	if err := srv.mailer.Send(ctx, account.Email, "Password reset", body); err != nil {
		srv.logger.Error("Failed to send reset mail", "error", err, "accountID", account.ID)

		return errors.Wrap(err, "failed to send reset mail")
	}

	return nil
}

// ResetPassword verifies a reset token and sets a new password. Any decode,
// lookup, or verification failure is reported as an invalid token.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.logger.Info("Resetting password via token")

	rawID, err := base64.RawURLEncoding.DecodeString(input.UID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "malformed uid")
	}
	accountID, err := uuid.Parse(string(rawID))
	if err != nil {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "malformed uid")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accRepo := repoFactory.NewAccountRepository()

		account, err := accRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "unknown account")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if err := srv.resetTokens.Verify(account, input.Token); err != nil {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "token verification failed")
		}

		return srv.accounts.SetPassword(ctx, accRepo, account, input.NewPassword)
	})

	if err != nil {
		srv.logger.Warn("Password reset failed", "error", err.Error())

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	return nil
}
