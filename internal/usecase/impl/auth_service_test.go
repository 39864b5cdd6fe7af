package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	mockUC "roster/internal/mocks/usecase"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testResetLinkBaseURL = "https://example.com/reset"

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	accounts    *mockUC.MockAccountManager
	hasher      *mockSvc.MockPasswordHasher
	resetTokens *mockSvc.MockResetTokenService
	mailer      *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accounts := mockUC.NewMockAccountManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	resetTokens := mockSvc.NewMockResetTokenService(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewAuthService(
		txManager,
		accounts,
		hasher,
		resetTokens,
		mailer,
		testResetLinkBaseURL,
		newDiscardLogger(),
	)

	return authServiceFixtures{
		service:     service,
		txManager:   txManager,
		accounts:    accounts,
		hasher:      hasher,
		resetTokens: resetTokens,
		mailer:      mailer,
	}
}

func TestAuthService_Login_FirstLoginCreatesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "tester@example.com", Password: "secret1"}
	account := &entity.Account{ID: uuid.New(), Email: input.Email, IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockTokenRepo := mockRepo.NewMockAuthTokenRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewAuthTokenRepository().Return(mockTokenRepo)

			fx.accounts.EXPECT().
				Authenticate(ctx, mockAccRepo, input.Email, input.Password).
				Return(account, nil)

			mockTokenRepo.EXPECT().
				FindByAccountID(ctx, account.ID).
				Return(nil, repository.ErrAuthTokenNotFound)
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AuthToken")).
				Run(func(ctx context.Context, token *entity.AuthToken) {
					assert.Equal(t, account.ID, token.AccountID)
					assert.Len(t, token.Key, 40)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Len(t, output.Token, 40)
	assert.Equal(t, account.ID, output.Account.ID)
}

func TestAuthService_Login_RepeatLoginReusesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "tester@example.com", Password: "secret1"}
	account := &entity.Account{ID: uuid.New(), Email: input.Email, IsActive: true}
	existing := &entity.AuthToken{Key: "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef", AccountID: account.ID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockTokenRepo := mockRepo.NewMockAuthTokenRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewAuthTokenRepository().Return(mockTokenRepo)

			fx.accounts.EXPECT().
				Authenticate(ctx, mockAccRepo, input.Email, input.Password).
				Return(account, nil)

			mockTokenRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existing.Key, output.Token)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "tester@example.com", Password: "wrong"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockTokenRepo := mockRepo.NewMockAuthTokenRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewAuthTokenRepository().Return(mockTokenRepo)

			fx.accounts.EXPECT().
				Authenticate(ctx, mockAccRepo, input.Email, input.Password).
				Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed"))

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_AccountForToken_UnknownKey(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockTokenRepo := mockRepo.NewMockAuthTokenRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewAuthTokenRepository().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().
				FindByKey(ctx, "bogus").
				Return(nil, repository.ErrAuthTokenNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
		}).
		Return(errors.Wrap(domainerrors.ErrNotAuthenticated, "unknown token"))

	account, err := fx.service.AccountForToken(ctx, "bogus")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}

func TestAuthService_AccountForToken_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	token := &entity.AuthToken{Key: "somekey", AccountID: accountID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockTokenRepo := mockRepo.NewMockAuthTokenRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewAuthTokenRepository().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().FindByKey(ctx, token.Key).Return(token, nil)
			mockAccRepo.EXPECT().
				FindByID(ctx, accountID).
				Return(&entity.Account{ID: accountID, IsActive: false}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
		}).
		Return(errors.Wrap(domainerrors.ErrAccountInactive, "token account is inactive"))

	account, err := fx.service.AccountForToken(ctx, token.Key)

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAuthService_Logout_SecondLogoutFails(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockAuthTokenRepository(t)

			mockFactory.EXPECT().NewAuthTokenRepository().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().
				DeleteByAccountID(ctx, accountID).
				Return(repository.ErrAuthTokenNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrAuthTokenNotFound))
		}).
		Return(errors.Wrap(domainerrors.ErrAuthTokenNotFound, "logout failed"))

	err := fx.service.Logout(ctx, accountID)

	assert.True(t, errors.Is(err, domainerrors.ErrAuthTokenNotFound))
}

func TestAuthService_ChangePassword_ConfirmationMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
		OldPassword:     "old_secret",
		NewPassword:     "new_secret",
		ConfirmPassword: "different",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}
	input := &usecase.ChangePasswordInput{
		OldPassword:     "wrong",
		NewPassword:     "new_secret",
		ConfirmPassword: "new_secret",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

			fx.hasher.EXPECT().Check(input.OldPassword, account.PasswordHash).Return(false)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrWrongOldPassword))
		}).
		Return(errors.Wrap(domainerrors.ErrWrongOldPassword, "password change failed"))

	err := fx.service.ChangePassword(ctx, account.ID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrWrongOldPassword))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}
	input := &usecase.ChangePasswordInput{
		OldPassword:     "old_secret",
		NewPassword:     "new_secret",
		ConfirmPassword: "new_secret",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

			fx.hasher.EXPECT().Check(input.OldPassword, account.PasswordHash).Return(true)
			fx.accounts.EXPECT().
				SetPassword(ctx, mockAccRepo, account, input.NewPassword).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, account.ID, input)

	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_SendsResetLink(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "tester@example.com", PasswordHash: "stored_hash"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.resetTokens.EXPECT().Generate(account).Return("signed-token", nil)

	expectedUID := base64.RawURLEncoding.EncodeToString([]byte(account.ID.String()))
	expectedLink := fmt.Sprintf("%s/%s/%s", testResetLinkBaseURL, expectedUID, "signed-token")
	fx.mailer.EXPECT().
		Send(ctx, account.Email, "Password reset", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, htmlBody string) {
			assert.Contains(t, htmlBody, expectedLink)
		}).
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: account.Email})

	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_NormalizesEmailDomain(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "tester@example.com", PasswordHash: "stored_hash"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			// Lookup sees the stored form even when the caller shouts the domain.
			mockAccRepo.EXPECT().FindByEmail(ctx, "tester@example.com").Return(account, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.resetTokens.EXPECT().Generate(account).Return("signed-token", nil)
	fx.mailer.EXPECT().
		Send(ctx, account.Email, "Password reset", mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "tester@EXAMPLE.COM"})

	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().
				FindByEmail(ctx, "missing@example.com").
				Return(nil, repository.ErrAccountNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccountNotFound, "password reset failed"))

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "missing@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAuthService_ResetPassword_MalformedUID(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		UID:         "%%%not-base64%%%",
		Token:       "whatever",
		NewPassword: "new_secret",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAuthService_ResetPassword_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}
	uid := base64.RawURLEncoding.EncodeToString([]byte(account.ID.String()))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

			fx.resetTokens.EXPECT().Verify(account, "forged").Return(errors.New("invalid reset token"))

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
		}).
		Return(errors.Wrap(domainerrors.ErrResetTokenInvalid, "token verification failed"))

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		UID:         uid,
		Token:       "forged",
		NewPassword: "new_secret",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), PasswordHash: "stored_hash"}
	uid := base64.RawURLEncoding.EncodeToString([]byte(account.ID.String()))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

			fx.resetTokens.EXPECT().Verify(account, "signed-token").Return(nil)
			fx.accounts.EXPECT().
				SetPassword(ctx, mockAccRepo, account, "new_secret").
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		UID:         uid,
		Token:       "signed-token",
		NewPassword: "new_secret",
	})

	require.NoError(t, err)
}
