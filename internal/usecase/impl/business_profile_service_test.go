package impl

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"
	mockUC "roster/internal/mocks/usecase"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessProfileServiceFixtures holds all test dependencies for business profile service tests.
type businessProfileServiceFixtures struct {
	service   usecase.BusinessProfileUsecase
	txManager *mockRepo.MockTransactionManager
	accounts  *mockUC.MockAccountManager
	locations *mockUC.MockLocationWriter
}

func createTestBusinessProfileService(t *testing.T) businessProfileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accounts := mockUC.NewMockAccountManager(t)
	locations := mockUC.NewMockLocationWriter(t)

	service := NewBusinessProfileService(txManager, accounts, locations, newDiscardLogger())

	return businessProfileServiceFixtures{
		service:   service,
		txManager: txManager,
		accounts:  accounts,
		locations: locations,
	}
}

func TestBusinessProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestBusinessProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateBusinessProfileInput{
		Account: usecase.CreateAccountInput{
			Handle:   "acme",
			Email:    "owner@acme.example",
			Password: "secret1",
		},
		Location:     usecase.LocationInput{City: "Springfield"},
		BusinessName: "Acme Corp",
		BusinessType: "retail",
		BusinessHours: map[string]string{
			"mon": "09:00-17:00",
		},
		Email: "owner@acme.example",
	}

	accountID := uuid.New()
	locationID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocRepo := mockRepo.NewMockLocationRepository(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockProfRepo := mockRepo.NewMockBusinessProfileRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewBusinessProfileRepository().Return(mockProfRepo)

			fx.locations.EXPECT().
				Create(ctx, mockLocRepo, &input.Location).
				Return(&entity.Location{ID: locationID}, nil)

			fx.accounts.EXPECT().
				CreateAccount(ctx, mockAccRepo, &input.Account, entity.RoleBusiness).
				Return(&entity.Account{ID: accountID, Role: entity.RoleBusiness}, nil)

			mockProfRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BusinessProfile")).
				Run(func(ctx context.Context, profile *entity.BusinessProfile) {
					profile.ID = uuid.New()

					assert.Equal(t, accountID, profile.AccountID)
					assert.Equal(t, locationID, profile.LocationID)
					assert.Equal(t, "Acme Corp", profile.BusinessName)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.NotNil(t, profile.Location)
	assert.Equal(t, "09:00-17:00", profile.BusinessHours["mon"])
}

func TestBusinessProfileService_GetOwnProfile_NotFound(t *testing.T) {
	fx := createTestBusinessProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfRepo := mockRepo.NewMockBusinessProfileRepository(t)

			mockFactory.EXPECT().NewBusinessProfileRepository().Return(mockProfRepo)
			mockProfRepo.EXPECT().
				FindByAccountID(ctx, accountID).
				Return(nil, repository.ErrProfileNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProfileNotFound, "business profile not found"))

	profile, err := fx.service.GetOwnProfile(ctx, accountID)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestBusinessProfileService_UpdateOwnProfile_MergesFields(t *testing.T) {
	fx := createTestBusinessProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.BusinessProfile{
		ID:           uuid.New(),
		AccountID:    accountID,
		BusinessName: "Acme Corp",
		BusinessType: "retail",
	}

	newName := "Acme Holdings"
	newEmail := "billing@acme.example"
	input := &usecase.UpdateBusinessProfileInput{
		BusinessName: &newName,
		Account:      &usecase.UpdateAccountInput{Email: &newEmail},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfRepo := mockRepo.NewMockBusinessProfileRepository(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewBusinessProfileRepository().Return(mockProfRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)

			mockProfRepo.EXPECT().FindByAccountID(ctx, accountID).Return(existing, nil)

			fx.accounts.EXPECT().
				UpdateAccount(ctx, mockAccRepo, accountID, input.Account).
				Return(nil)

			mockProfRepo.EXPECT().Update(ctx, existing).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	updated, err := fx.service.UpdateOwnProfile(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.BusinessName)
	assert.Equal(t, "retail", updated.BusinessType)
}

func TestBusinessProfileService_ListProfiles(t *testing.T) {
	fx := createTestBusinessProfileService(t)

	ctx := context.Background()
	stored := []*entity.BusinessProfile{{ID: uuid.New(), BusinessName: "Acme Corp"}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfRepo := mockRepo.NewMockBusinessProfileRepository(t)

			mockFactory.EXPECT().NewBusinessProfileRepository().Return(mockProfRepo)
			mockProfRepo.EXPECT().FindAll(ctx).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	profiles, err := fx.service.ListProfiles(ctx)

	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}
