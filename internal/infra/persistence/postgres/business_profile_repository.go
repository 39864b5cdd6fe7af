package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// businessProfileRepository implements the domain.BusinessProfileRepository interface using GORM.
type businessProfileRepository struct {
	db *gorm.DB
}

// NewBusinessProfileRepository is the constructor for businessProfileRepository.
func NewBusinessProfileRepository(db *gorm.DB) repository.BusinessProfileRepository {
	return &businessProfileRepository{db: db}
}

// FindByAccountID retrieves the business profile owned by the account.
func (repo *businessProfileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel

	err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile by account id")
	}

	return toBusinessProfileDomain(&profileM), nil
}

// FindAll retrieves every business profile, locations preloaded.
func (repo *businessProfileRepository) FindAll(ctx context.Context) ([]*entity.BusinessProfile, error) {
	var profileModels []*model.BusinessProfileModel

	err := repo.db.WithContext(ctx).
		Preload("Location").
		Order("created_at").
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business profiles")
	}

	profiles := make([]*entity.BusinessProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toBusinessProfileDomain(profileM))
	}

	return profiles, nil
}

// Create persists a new business profile entity.
func (repo *businessProfileRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	profileM := fromBusinessProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("business profile email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account or location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing business profile entity. The attached location
// is persisted through its own repository, never from here.
func (repo *businessProfileRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	profileM := fromBusinessProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("Location").Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("business profile email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toBusinessProfileDomain converts a GORM BusinessProfileModel to a domain BusinessProfile entity.
func toBusinessProfileDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	var hours map[string]string
	if len(data.BusinessHours) > 0 {
		hours = make(map[string]string, len(data.BusinessHours))
		for day, value := range data.BusinessHours {
			if s, ok := value.(string); ok {
				hours[day] = s
			}
		}
	}

	return &entity.BusinessProfile{
		ID:            data.ID,
		AccountID:     data.AccountID,
		LocationID:    data.LocationID,
		Location:      toLocationDomain(data.Location),
		BusinessName:  data.BusinessName,
		BusinessType:  data.BusinessType,
		BusinessHours: hours,
		Email:         data.Email,
		ContactNo:     data.ContactNo,
		BusinessLogo:  data.BusinessLogo,
		WebsiteURL:    data.WebsiteURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromBusinessProfileDomain converts a domain BusinessProfile entity to a GORM BusinessProfileModel.
// The Location association is deliberately left nil; locations are persisted separately.
func fromBusinessProfileDomain(data *entity.BusinessProfile) *model.BusinessProfileModel {
	if data == nil {
		return nil
	}

	var hours datatypes.JSONMap
	if len(data.BusinessHours) > 0 {
		hours = make(datatypes.JSONMap, len(data.BusinessHours))
		for day, value := range data.BusinessHours {
			hours[day] = value
		}
	}

	return &model.BusinessProfileModel{
		ID:            data.ID,
		AccountID:     data.AccountID,
		LocationID:    data.LocationID,
		BusinessName:  data.BusinessName,
		BusinessType:  data.BusinessType,
		BusinessHours: hours,
		Email:         data.Email,
		ContactNo:     data.ContactNo,
		BusinessLogo:  data.BusinessLogo,
		WebsiteURL:    data.WebsiteURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
