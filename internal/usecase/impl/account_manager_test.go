package impl

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountManagerFixtures holds all test dependencies for account manager tests.
type accountManagerFixtures struct {
	manager usecase.AccountManager
	accRepo *mockRepo.MockAccountRepository
	hasher  *mockSvc.MockPasswordHasher
}

func createTestAccountManager(t *testing.T) accountManagerFixtures {
	accRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	manager := NewAccountManager(hasher, testMinPasswordLength, newDiscardLogger())

	return accountManagerFixtures{
		manager: manager,
		accRepo: accRepo,
		hasher:  hasher,
	}
}

func TestAccountManager_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Handle:   "tester",
		Email:    "Tester@Example.COM",
		Password: "secret1",
	}

	fx.accRepo.EXPECT().
		FindByEmail(ctx, "Tester@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	account, err := fx.manager.CreateAccount(ctx, fx.accRepo, input, entity.RoleUser)

	require.NoError(t, err)
	// The domain part is lower-cased, the local part is kept as entered.
	assert.Equal(t, "Tester@example.com", account.Email)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.True(t, account.IsActive)
	assert.Equal(t, "hashed_password", account.PasswordHash)
}

func TestAccountManager_CreateAccount_DuplicateEmail(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Handle:   "tester",
		Email:    "taken@example.com",
		Password: "secret1",
	}

	fx.accRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

	account, err := fx.manager.CreateAccount(ctx, fx.accRepo, input, entity.RoleUser)

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountManager_CreateAccount_PasswordTooShort(t *testing.T) {
	fx := createTestAccountManager(t)

	input := &usecase.CreateAccountInput{
		Handle:   "tester",
		Email:    "tester@example.com",
		Password: "short",
	}

	account, err := fx.manager.CreateAccount(context.Background(), fx.accRepo, input, entity.RoleAdmin)

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestAccountManager_Authenticate_Success(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	stored := &entity.Account{
		ID:           uuid.New(),
		Email:        "tester@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.accRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("secret1", stored.PasswordHash).Return(true)

	account, err := fx.manager.Authenticate(ctx, fx.accRepo, stored.Email, "secret1")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, account.ID)
}

func TestAccountManager_Authenticate_UnknownEmail(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	fx.accRepo.EXPECT().
		FindByEmail(ctx, "missing@example.com").
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.manager.Authenticate(ctx, fx.accRepo, "missing@example.com", "secret1")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountManager_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	stored := &entity.Account{
		ID:           uuid.New(),
		Email:        "tester@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.accRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", stored.PasswordHash).Return(false)

	account, err := fx.manager.Authenticate(ctx, fx.accRepo, stored.Email, "wrong")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountManager_Authenticate_InactiveAccount(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	stored := &entity.Account{
		ID:           uuid.New(),
		Email:        "tester@example.com",
		PasswordHash: "hashed_password",
		IsActive:     false,
	}

	fx.accRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("secret1", stored.PasswordHash).Return(true)

	account, err := fx.manager.Authenticate(ctx, fx.accRepo, stored.Email, "secret1")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAccountManager_UpdateAccount_NormalizesEmail(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	stored := &entity.Account{ID: uuid.New(), Email: "old@example.com"}
	newEmail := "New@Example.COM"

	fx.accRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.accRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, "New@example.com", account.Email)
		}).
		Return(nil)

	err := fx.manager.UpdateAccount(ctx, fx.accRepo, stored.ID, &usecase.UpdateAccountInput{Email: &newEmail})

	require.NoError(t, err)
}

func TestAccountManager_SetPassword_TooShort(t *testing.T) {
	fx := createTestAccountManager(t)

	account := &entity.Account{ID: uuid.New(), PasswordHash: "old_hash"}

	err := fx.manager.SetPassword(context.Background(), fx.accRepo, account, "short")

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
	assert.Equal(t, "old_hash", account.PasswordHash)
}

func TestAccountManager_SetPassword_Success(t *testing.T) {
	fx := createTestAccountManager(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), PasswordHash: "old_hash"}

	fx.hasher.EXPECT().Hash("new_secret").Return("new_hash", nil)
	fx.accRepo.EXPECT().Update(ctx, account).Return(nil)

	err := fx.manager.SetPassword(ctx, fx.accRepo, account, "new_secret")

	require.NoError(t, err)
	assert.Equal(t, "new_hash", account.PasswordHash)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Local.Part@example.com", normalizeEmail("Local.Part@Example.COM"))
	assert.Equal(t, "plain", normalizeEmail("plain"))
	assert.Equal(t, "a@b@c.com", normalizeEmail("a@b@C.COM"))
}
