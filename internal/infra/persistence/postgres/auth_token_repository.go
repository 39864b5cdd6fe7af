package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authTokenRepository implements the domain.AuthTokenRepository interface using GORM.
type authTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository is the constructor for authTokenRepository.
func NewAuthTokenRepository(db *gorm.DB) repository.AuthTokenRepository {
	return &authTokenRepository{db: db}
}

// FindByKey retrieves a token by its opaque key.
func (repo *authTokenRepository) FindByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel

	err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth token by key")
	}

	return toAuthTokenDomain(&tokenM), nil
}

// FindByAccountID retrieves the live token of an account, if any.
func (repo *authTokenRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth token by account id")
	}

	return toAuthTokenDomain(&tokenM), nil
}

// Create persists a new token.
func (repo *authTokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	tokenM := fromAuthTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("account already holds a token")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// DeleteByAccountID removes the account's live token.
func (repo *authTokenRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.AuthTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, the account held no token.
	if result.RowsAffected == 0 {
		return repository.ErrAuthTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAuthTokenDomain converts a GORM AuthTokenModel to a domain AuthToken entity.
func toAuthTokenDomain(data *model.AuthTokenModel) *entity.AuthToken {
	if data == nil {
		return nil
	}

	return &entity.AuthToken{
		Key:       data.Key,
		AccountID: data.AccountID,
		CreatedAt: data.CreatedAt,
	}
}

// fromAuthTokenDomain converts a domain AuthToken entity to a GORM AuthTokenModel.
func fromAuthTokenDomain(data *entity.AuthToken) *model.AuthTokenModel {
	if data == nil {
		return nil
	}

	return &model.AuthTokenModel{
		Key:       data.Key,
		AccountID: data.AccountID,
		CreatedAt: data.CreatedAt,
	}
}
