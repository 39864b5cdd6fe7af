package postgres

import (
	"context"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// personProfileRepository implements the domain.PersonProfileRepository interface using GORM.
// The user and admin variants share one row shape; the kind picks the table.
type personProfileRepository struct {
	db *gorm.DB
}

// NewPersonProfileRepository is the constructor for personProfileRepository.
func NewPersonProfileRepository(db *gorm.DB) repository.PersonProfileRepository {
	return &personProfileRepository{db: db}
}

// personProfileTable maps a profile kind to its table name.
func personProfileTable(kind entity.Role) string {
	if kind == entity.RoleAdmin {
		return "admin_profiles"
	}

	return "user_profiles"
}

// FindByAccountID retrieves the profile of the given kind owned by the account.
func (repo *personProfileRepository) FindByAccountID(ctx context.Context, kind entity.Role, accountID uuid.UUID) (*entity.PersonProfile, error) {
	var profileM model.PersonProfileModel

	err := repo.db.WithContext(ctx).
		Table(personProfileTable(kind)).
		Preload("Location").
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find person profile by account id")
	}

	return toPersonProfileDomain(&profileM), nil
}

// FindAll retrieves every profile of the given kind, locations preloaded.
func (repo *personProfileRepository) FindAll(ctx context.Context, kind entity.Role) ([]*entity.PersonProfile, error) {
	var profileModels []*model.PersonProfileModel

	err := repo.db.WithContext(ctx).
		Table(personProfileTable(kind)).
		Preload("Location").
		Order("created_at").
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list person profiles")
	}

	profiles := make([]*entity.PersonProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toPersonProfileDomain(profileM))
	}

	return profiles, nil
}

// Create persists a new profile entity of the given kind.
func (repo *personProfileRepository) Create(ctx context.Context, kind entity.Role, profile *entity.PersonProfile) error {
	profileM := fromPersonProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Table(personProfileTable(kind)).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("profile email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account or location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile entity of the given kind. The attached
// location is persisted through its own repository, never from here.
func (repo *personProfileRepository) Update(ctx context.Context, kind entity.Role, profile *entity.PersonProfile) error {
	profileM := fromPersonProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Table(personProfileTable(kind)).Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("profile email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update person profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPersonProfileDomain converts a GORM PersonProfileModel to a domain PersonProfile entity.
func toPersonProfileDomain(data *model.PersonProfileModel) *entity.PersonProfile {
	if data == nil {
		return nil
	}

	var dateOfBirth time.Time
	if data.DateOfBirth != nil {
		dateOfBirth = *data.DateOfBirth
	}

	return &entity.PersonProfile{
		ID:           data.ID,
		AccountID:    data.AccountID,
		LocationID:   data.LocationID,
		Location:     toLocationDomain(data.Location),
		FirstName:    data.FirstName,
		MiddleName:   data.MiddleName,
		LastName:     data.LastName,
		Email:        data.Email,
		Gender:       entity.Gender(data.Gender),
		DateOfBirth:  dateOfBirth,
		ContactNo:    data.ContactNo,
		ProfileImage: data.ProfileImage,
		Interests:    data.Interests,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPersonProfileDomain converts a domain PersonProfile entity to a GORM PersonProfileModel.
// The Location association is deliberately left nil; locations are persisted separately.
func fromPersonProfileDomain(data *entity.PersonProfile) *model.PersonProfileModel {
	if data == nil {
		return nil
	}

	var dateOfBirth *time.Time
	if !data.DateOfBirth.IsZero() {
		dob := data.DateOfBirth
		dateOfBirth = &dob
	}

	return &model.PersonProfileModel{
		ID:           data.ID,
		AccountID:    data.AccountID,
		LocationID:   data.LocationID,
		FirstName:    data.FirstName,
		MiddleName:   data.MiddleName,
		LastName:     data.LastName,
		Email:        data.Email,
		Gender:       data.Gender.String(),
		DateOfBirth:  dateOfBirth,
		ContactNo:    data.ContactNo,
		ProfileImage: data.ProfileImage,
		Interests:    data.Interests,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
