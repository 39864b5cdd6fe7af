package impl

import (
	"context"
	"log/slog"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// businessProfileService implements the BusinessProfileUsecase interface.
type businessProfileService struct {
	txManager repository.TransactionManager
	accounts  usecase.AccountManager
	locations usecase.LocationWriter
	logger    *slog.Logger
}

// NewBusinessProfileService is the constructor for businessProfileService.
func NewBusinessProfileService(
	txManager repository.TransactionManager,
	accounts usecase.AccountManager,
	locations usecase.LocationWriter,
	logger *slog.Logger,
) usecase.BusinessProfileUsecase {
	return &businessProfileService{
		txManager: txManager,
		accounts:  accounts,
		locations: locations,
		logger:    logger,
	}
}

// CreateProfile creates the location, account, and profile rows of a new
// business profile in a single transaction.
func (srv *businessProfileService) CreateProfile(ctx context.Context, input *usecase.CreateBusinessProfileInput) (*entity.BusinessProfile, error) {
	srv.logger.Info("Creating business profile", "email", input.Email)

	var created *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locRepo := repoFactory.NewLocationRepository()
		accRepo := repoFactory.NewAccountRepository()
		profRepo := repoFactory.NewBusinessProfileRepository()

		// 1. Create the location first so the profile can reference it.
		location, err := srv.locations.Create(ctx, locRepo, &input.Location)
		if err != nil {
			return err
		}

		// 2. Create the login account.
		account, err := srv.accounts.CreateAccount(ctx, accRepo, &input.Account, entity.RoleBusiness)
		if err != nil {
			return err
		}

		// 3. Create the profile row referencing both.
		profile := &entity.BusinessProfile{
			AccountID:     account.ID,
			LocationID:    location.ID,
			BusinessName:  input.BusinessName,
			BusinessType:  input.BusinessType,
			BusinessHours: input.BusinessHours,
			Email:         input.Email,
			ContactNo:     input.ContactNo,
			BusinessLogo:  input.BusinessLogo,
			WebsiteURL:    input.WebsiteURL,
		}
		if err := profRepo.Create(ctx, profile); err != nil {
			return errors.WithStack(err)
		}

		profile.Location = location
		created = profile

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute business profile creation transaction", "error", err)

		return nil, errors.Wrap(err, "failed to execute business profile creation transaction")
	}
	srv.logger.Debug("Business profile created", "profileID", created.ID)

	return created, nil
}

// GetOwnProfile returns the business profile owned by the account.
func (srv *businessProfileService) GetOwnProfile(ctx context.Context, accountID uuid.UUID) (*entity.BusinessProfile, error) {
	srv.logger.Debug("Getting business profile", "accountID", accountID)

	var profile *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profRepo := repoFactory.NewBusinessProfileRepository()

		found, err := profRepo.FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "business profile not found")
			}

			return errors.Wrap(err, "failed to find business profile")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get business profile")
	}

	return profile, nil
}

// UpdateOwnProfile applies a partial update to the account's business profile.
func (srv *businessProfileService) UpdateOwnProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateBusinessProfileInput) (*entity.BusinessProfile, error) {
	srv.logger.Info("Updating business profile", "accountID", accountID)

	var updated *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profRepo := repoFactory.NewBusinessProfileRepository()

		profile, err := profRepo.FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "business profile not found")
			}

			return errors.Wrap(err, "failed to find business profile")
		}

		applyBusinessProfileUpdate(profile, input)

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

		if err := profRepo.Update(ctx, profile); err != nil {
			return errors.WithStack(err)
		}
		updated = profile

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute business profile update transaction", "error", err)

		return nil, errors.Wrap(err, "failed to execute business profile update transaction")
	}

	return updated, nil
}

// ListProfiles returns every business profile, locations included.
func (srv *businessProfileService) ListProfiles(ctx context.Context) ([]*entity.BusinessProfile, error) {
	srv.logger.Debug("Listing business profiles")

	var profiles []*entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profRepo := repoFactory.NewBusinessProfileRepository()

		found, err := profRepo.FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list business profiles")
		}
		profiles = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list business profiles")
	}

	return profiles, nil
}

// applyBusinessProfileUpdate merges the non-nil scalar fields of the input into the profile.
func applyBusinessProfileUpdate(profile *entity.BusinessProfile, input *usecase.UpdateBusinessProfileInput) {
	if input.BusinessName != nil {
		profile.BusinessName = *input.BusinessName
	}
	if input.BusinessType != nil {
		profile.BusinessType = *input.BusinessType
	}
	if input.BusinessHours != nil {
		profile.BusinessHours = *input.BusinessHours
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}
	if input.ContactNo != nil {
		profile.ContactNo = *input.ContactNo
	}
	if input.BusinessLogo != nil {
		profile.BusinessLogo = *input.BusinessLogo
	}
	if input.WebsiteURL != nil {
		profile.WebsiteURL = *input.WebsiteURL
	}
}
