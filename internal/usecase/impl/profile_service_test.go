package impl

import (
	"context"
	"testing"
	"time"

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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.PersonProfileUsecase
	txManager *mockRepo.MockTransactionManager
	accounts  *mockUC.MockAccountManager
	locations *mockUC.MockLocationWriter
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accounts := mockUC.NewMockAccountManager(t)
	locations := mockUC.NewMockLocationWriter(t)

	service := NewProfileService(txManager, accounts, locations, newDiscardLogger())

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		accounts:  accounts,
		locations: locations,
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreatePersonProfileInput{
		Account: usecase.CreateAccountInput{
			Handle:   "tester",
			Email:    "tester@example.com",
			Password: "secret1",
		},
		Location: usecase.LocationInput{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			Country: "USA",
		},
		FirstName:   "Test",
		LastName:    "User",
		Email:       "tester@example.com",
		Gender:      "other",
		DateOfBirth: "1990-06-15",
		Interests:   []string{"maps"},
	}

	accountID := uuid.New()
	locationID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocRepo := mockRepo.NewMockLocationRepository(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockProfRepo := mockRepo.NewMockPersonProfileRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewPersonProfileRepository().Return(mockProfRepo)

			fx.locations.EXPECT().
				Create(ctx, mockLocRepo, &input.Location).
				Return(&entity.Location{ID: locationID, Street: "1 Main St"}, nil)

			fx.accounts.EXPECT().
				CreateAccount(ctx, mockAccRepo, &input.Account, entity.RoleUser).
				Return(&entity.Account{ID: accountID, Role: entity.RoleUser}, nil)

			mockProfRepo.EXPECT().
				Create(ctx, entity.RoleUser, mock.AnythingOfType("*entity.PersonProfile")).
				Run(func(ctx context.Context, kind entity.Role, profile *entity.PersonProfile) {
					profile.ID = uuid.New()

					assert.Equal(t, accountID, profile.AccountID)
					assert.Equal(t, locationID, profile.LocationID)
					assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), profile.DateOfBirth)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, entity.RoleUser, input)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.NotNil(t, profile.Location)
	assert.Equal(t, locationID, profile.LocationID)
}

func TestProfileService_CreateProfile_RejectsBusinessKind(t *testing.T) {
	fx := createTestProfileService(t)

	profile, err := fx.service.CreateProfile(context.Background(), entity.RoleBusiness, &usecase.CreatePersonProfileInput{})

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_CreateProfile_InvalidDateOfBirth(t *testing.T) {
	fx := createTestProfileService(t)

	input := &usecase.CreatePersonProfileInput{DateOfBirth: "15/06/1990"}

	profile, err := fx.service.CreateProfile(context.Background(), entity.RoleUser, input)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_CreateProfile_AccountFailureRollsBack(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreatePersonProfileInput{
		Account:  usecase.CreateAccountInput{Email: "taken@example.com", Password: "secret1"},
		Location: usecase.LocationInput{City: "Springfield"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocRepo := mockRepo.NewMockLocationRepository(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)
			mockProfRepo := mockRepo.NewMockPersonProfileRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockFactory.EXPECT().NewPersonProfileRepository().Return(mockProfRepo)

			fx.locations.EXPECT().
				Create(ctx, mockLocRepo, &input.Location).
				Return(&entity.Location{ID: uuid.New()}, nil)

			fx.accounts.EXPECT().
				CreateAccount(ctx, mockAccRepo, &input.Account, entity.RoleAdmin).
				Return(nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "account creation failed"))

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
		}).
		Return(errors.Wrap(domainerrors.ErrAccountAlreadyExists, "account creation failed"))

	profile, err := fx.service.CreateProfile(ctx, entity.RoleAdmin, input)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestProfileService_GetOwnProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfRepo := mockRepo.NewMockPersonProfileRepository(t)

			mockFactory.EXPECT().NewPersonProfileRepository().Return(mockProfRepo)
			mockProfRepo.EXPECT().
				FindByAccountID(ctx, entity.RoleUser, accountID).
				Return(nil, repository.ErrProfileNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found"))

	profile, err := fx.service.GetOwnProfile(ctx, entity.RoleUser, accountID)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateOwnProfile_MergesFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	locationID := uuid.New()
	existing := &entity.PersonProfile{
		ID:         uuid.New(),
		AccountID:  accountID,
		LocationID: locationID,
		FirstName:  "Old",
		LastName:   "Name",
		ContactNo:  "123",
		Location:   &entity.Location{ID: locationID, City: "Springfield"},
	}

	newFirst := "New"
	newCity := "Shelbyville"
	input := &usecase.UpdatePersonProfileInput{
		FirstName: &newFirst,
		Location:  &usecase.UpdateLocationInput{City: &newCity},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfRepo := mockRepo.NewMockPersonProfileRepository(t)
			mockLocRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().NewPersonProfileRepository().Return(mockProfRepo)
			mockFactory.EXPECT().NewLocationRepository().Return(mockLocRepo)

			mockProfRepo.EXPECT().
				FindByAccountID(ctx, entity.RoleUser, accountID).
				Return(existing, nil)

			fx.locations.EXPECT().
				Update(ctx, mockLocRepo, existing.Location, input.Location).
				Return(nil)

			mockProfRepo.EXPECT().
				Update(ctx, entity.RoleUser, existing).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	updated, err := fx.service.UpdateOwnProfile(ctx, entity.RoleUser, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, "Name", updated.LastName)
	assert.Equal(t, "123", updated.ContactNo)
}

func TestProfileService_UpdateOwnProfile_InvalidGender(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	bad := "unknown"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfRepo := mockRepo.NewMockPersonProfileRepository(t)

			mockFactory.EXPECT().NewPersonProfileRepository().Return(mockProfRepo)
			mockProfRepo.EXPECT().
				FindByAccountID(ctx, entity.RoleAdmin, accountID).
				Return(&entity.PersonProfile{AccountID: accountID}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		}).
		Return(errors.Wrap(domainerrors.ErrValidationFailed, "invalid gender"))

	updated, err := fx.service.UpdateOwnProfile(ctx, entity.RoleAdmin, accountID, &usecase.UpdatePersonProfileInput{Gender: &bad})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_ListProfiles(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := []*entity.PersonProfile{
		{ID: uuid.New(), FirstName: "A"},
		{ID: uuid.New(), FirstName: "B"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfRepo := mockRepo.NewMockPersonProfileRepository(t)

			mockFactory.EXPECT().NewPersonProfileRepository().Return(mockProfRepo)
			mockProfRepo.EXPECT().FindAll(ctx, entity.RoleAdmin).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	profiles, err := fx.service.ListProfiles(ctx, entity.RoleAdmin)

	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}
