package impl

import (
	"context"
	"log/slog"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dateOfBirthLayout = "2006-01-02"

// profileService implements the PersonProfileUsecase interface for both the
// user and admin profile variants.
type profileService struct {
	txManager repository.TransactionManager
	accounts  usecase.AccountManager
	locations usecase.LocationWriter
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	accounts usecase.AccountManager,
	locations usecase.LocationWriter,
	logger *slog.Logger,
) usecase.PersonProfileUsecase {
	return &profileService{
		txManager: txManager,
		accounts:  accounts,
		locations: locations,
		logger:    logger,
	}
}

// CreateProfile creates the location, account, and profile rows of a new
// person profile. All three writes share one transaction; any failure rolls
// back everything.
func (srv *profileService) CreateProfile(ctx context.Context, kind entity.Role, input *usecase.CreatePersonProfileInput) (*entity.PersonProfile, error) {
	srv.logger.Info("Creating person profile", "kind", kind, "email", input.Email)

	if !kind.IsPerson() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "kind must be user or admin")
	}

	dateOfBirth, err := parseDateOfBirth(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	var created *entity.PersonProfile

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locRepo := repoFactory.NewLocationRepository()
		accRepo := repoFactory.NewAccountRepository()
		profRepo := repoFactory.NewPersonProfileRepository()

		// 1. Create the location first so the profile can reference it.
		location, err := srv.locations.Create(ctx, locRepo, &input.Location)
		if err != nil {
			return err
		}

		// 2. Create the login account with the variant's role.
		account, err := srv.accounts.CreateAccount(ctx, accRepo, &input.Account, kind)
		if err != nil {
			return err
		}

		// 3. Create the profile row referencing both.
		profile := &entity.PersonProfile{
			AccountID:    account.ID,
			LocationID:   location.ID,
			FirstName:    input.FirstName,
			MiddleName:   input.MiddleName,
			LastName:     input.LastName,
			Email:        input.Email,
			Gender:       entity.Gender(input.Gender),
			DateOfBirth:  dateOfBirth,
			ContactNo:    input.ContactNo,
			ProfileImage: input.ProfileImage,
			Interests:    input.Interests,
		}
		if err := profRepo.Create(ctx, kind, profile); err != nil {
			return errors.WithStack(err)
		}

		profile.Location = location
		created = profile

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute profile creation transaction", "error", err, "kind", kind)

		return nil, errors.Wrap(err, "failed to execute profile creation transaction")
	}
	srv.logger.Debug("Person profile created", "kind", kind, "profileID", created.ID)

	return created, nil
}

// GetOwnProfile returns the profile of the given kind owned by the account.
func (srv *profileService) GetOwnProfile(ctx context.Context, kind entity.Role, accountID uuid.UUID) (*entity.PersonProfile, error) {
	srv.logger.Debug("Getting person profile", "kind", kind, "accountID", accountID)

	var profile *entity.PersonProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profRepo := repoFactory.NewPersonProfileRepository()

		found, err := profRepo.FindByAccountID(ctx, kind, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateOwnProfile applies a partial update to the account's profile. Scalar
// fields, the nested location, and the nested account section all commit in
// one transaction.
func (srv *profileService) UpdateOwnProfile(ctx context.Context, kind entity.Role, accountID uuid.UUID, input *usecase.UpdatePersonProfileInput) (*entity.PersonProfile, error) {
	srv.logger.Info("Updating person profile", "kind", kind, "accountID", accountID)

	var updated *entity.PersonProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profRepo := repoFactory.NewPersonProfileRepository()

		profile, err := profRepo.FindByAccountID(ctx, kind, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if err := applyPersonProfileUpdate(profile, input); err != nil {
			return err
		}

		if input.Location != nil {
			location := profile.Location
			if location == nil {
				locRepo := repoFactory.NewLocationRepository()
				location, err = locRepo.FindByID(ctx, profile.LocationID)
				if err != nil {
					return errors.Wrap(err, "failed to find profile location")
				}
			}
			if err := srv.locations.Update(ctx, repoFactory.NewLocationRepository(), location, input.Location); err != nil {
				return err
			}
			profile.Location = location
		}

		if input.Account != nil {
			if err := srv.accounts.UpdateAccount(ctx, repoFactory.NewAccountRepository(), accountID, input.Account); err != nil {
				return err
			}
		}

		if err := profRepo.Update(ctx, kind, profile); err != nil {
			return errors.WithStack(err)
		}
		updated = profile

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute profile update transaction", "error", err, "kind", kind)

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// ListProfiles returns every profile of the kind, locations included.
func (srv *profileService) ListProfiles(ctx context.Context, kind entity.Role) ([]*entity.PersonProfile, error) {
	srv.logger.Debug("Listing person profiles", "kind", kind)

	var profiles []*entity.PersonProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profRepo := repoFactory.NewPersonProfileRepository()

		found, err := profRepo.FindAll(ctx, kind)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		profiles = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// applyPersonProfileUpdate merges the non-nil scalar fields of the input into the profile.
func applyPersonProfileUpdate(profile *entity.PersonProfile, input *usecase.UpdatePersonProfileInput) error {
	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.MiddleName != nil {
		profile.MiddleName = *input.MiddleName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}
	if input.Gender != nil {
		gender := entity.Gender(*input.Gender)
		if !gender.IsValid() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "invalid gender")
		}
		profile.Gender = gender
	}
	if input.DateOfBirth != nil {
		dateOfBirth, err := parseDateOfBirth(*input.DateOfBirth)
		if err != nil {
			return err
		}
		profile.DateOfBirth = dateOfBirth
	}
	if input.ContactNo != nil {
		profile.ContactNo = *input.ContactNo
	}
	if input.ProfileImage != nil {
		profile.ProfileImage = *input.ProfileImage
	}
	if input.Interests != nil {
		profile.Interests = *input.Interests
	}

	return nil
}

// parseDateOfBirth parses an optional "YYYY-MM-DD" date string.
func parseDateOfBirth(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(dateOfBirthLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed, "invalid date of birth")
	}

	return parsed, nil
}
