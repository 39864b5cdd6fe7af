package impl

import (
	"context"
	"log/slog"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		logger:    logger,
	}
}

// SetAccountActive toggles the active flag of an account. No other field is touched.
func (srv *accountService) SetAccountActive(ctx context.Context, accountID uuid.UUID, isActive bool) error {
	srv.logger.Info("Setting account active flag", "accountID", accountID, "isActive", isActive)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accRepo := repoFactory.NewAccountRepository()

		account, err := accRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		account.IsActive = isActive

		if err := accRepo.Update(ctx, account); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to set account active flag", "error", err, "accountID", accountID)

		return errors.Wrap(err, "failed to set account active flag")
	}

	return nil
}
