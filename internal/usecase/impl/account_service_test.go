package impl

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_SetAccountActive_Deactivates(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewAccountService(txManager, newDiscardLogger())

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), IsActive: true}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
			mockAccRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, updated *entity.Account) {
					assert.False(t, updated.IsActive)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := service.SetAccountActive(ctx, account.ID, false)

	require.NoError(t, err)
}

func TestAccountService_SetAccountActive_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewAccountService(txManager, newDiscardLogger())

	ctx := context.Background()
	accountID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccRepo)
			mockAccRepo.EXPECT().
				FindByID(ctx, accountID).
				Return(nil, repository.ErrAccountNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
		}).
		Return(errors.Wrap(domainerrors.ErrAccountNotFound, "account not found"))

	err := service.SetAccountActive(ctx, accountID, true)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
