package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// PersonProfileUsecase defines the business operations on person-shaped
// profiles. The kind argument selects the user or admin variant; both share
// the same orchestration.
type PersonProfileUsecase interface {
	// CreateProfile creates the location, account, and profile rows of a new
	// person profile in a single transaction.
	CreateProfile(ctx context.Context, kind entity.Role, input *CreatePersonProfileInput) (*entity.PersonProfile, error)

	// GetOwnProfile returns the profile owned by the account.
	GetOwnProfile(ctx context.Context, kind entity.Role, accountID uuid.UUID) (*entity.PersonProfile, error)

	// UpdateOwnProfile applies a partial update to the account's profile,
	// including nested location and account sections, in a single transaction.
	UpdateOwnProfile(ctx context.Context, kind entity.Role, accountID uuid.UUID, input *UpdatePersonProfileInput) (*entity.PersonProfile, error)

	// ListProfiles returns every profile of the kind. Authorization is
	// enforced at the delivery boundary.
	ListProfiles(ctx context.Context, kind entity.Role) ([]*entity.PersonProfile, error)
}

// BusinessProfileUsecase defines the business operations on business profiles.
type BusinessProfileUsecase interface {
	// CreateProfile creates the location, account, and profile rows of a new
	// business profile in a single transaction.
	CreateProfile(ctx context.Context, input *CreateBusinessProfileInput) (*entity.BusinessProfile, error)

	// GetOwnProfile returns the business profile owned by the account.
	GetOwnProfile(ctx context.Context, accountID uuid.UUID) (*entity.BusinessProfile, error)

	// UpdateOwnProfile applies a partial update to the account's business profile.
	UpdateOwnProfile(ctx context.Context, accountID uuid.UUID, input *UpdateBusinessProfileInput) (*entity.BusinessProfile, error)

	// ListProfiles returns every business profile.
	ListProfiles(ctx context.Context) ([]*entity.BusinessProfile, error)
}

// AccountUsecase defines staff-level account administration operations.
type AccountUsecase interface {
	// SetAccountActive toggles the active flag of an account. Nothing else
	// on the account is touched.
	SetAccountActive(ctx context.Context, accountID uuid.UUID, isActive bool) error
}

// --- Input DTOs ---

// CreatePersonProfileInput defines the composite payload for creating a
// person profile together with its account and location.
type CreatePersonProfileInput struct {
	Account      CreateAccountInput `json:"account" validate:"required"`
	Location     LocationInput      `json:"location"`
	FirstName    string             `json:"first_name" validate:"required"`
	MiddleName   string             `json:"middle_name"`
	LastName     string             `json:"last_name" validate:"required"`
	Email        string             `json:"email" validate:"required,email"`
	Gender       string             `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth  string             `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	ContactNo    string             `json:"contact_no"`
	ProfileImage string             `json:"profile_image" validate:"omitempty,url"`
	Interests    []string           `json:"interests"`
}

// UpdatePersonProfileInput defines a partial update of a person profile.
// Only non-nil fields are applied. The nested location and account sections
// are themselves partial.
type UpdatePersonProfileInput struct {
	FirstName    *string              `json:"first_name,omitempty"`
	MiddleName   *string              `json:"middle_name,omitempty"`
	LastName     *string              `json:"last_name,omitempty"`
	Email        *string              `json:"email,omitempty" validate:"omitempty,email"`
	Gender       *string              `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth  *string              `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ContactNo    *string              `json:"contact_no,omitempty"`
	ProfileImage *string              `json:"profile_image,omitempty" validate:"omitempty,url"`
	Interests    *[]string            `json:"interests,omitempty"`
	Location     *UpdateLocationInput `json:"location,omitempty"`
	Account      *UpdateAccountInput  `json:"account,omitempty"`
}

// CreateBusinessProfileInput defines the composite payload for creating a
// business profile together with its account and location.
type CreateBusinessProfileInput struct {
	Account       CreateAccountInput `json:"account" validate:"required"`
	Location      LocationInput      `json:"location"`
	BusinessName  string             `json:"business_name" validate:"required"`
	BusinessType  string             `json:"business_type"`
	BusinessHours map[string]string  `json:"business_hours"`
	Email         string             `json:"email" validate:"required,email"`
	ContactNo     string             `json:"contact_no"`
	BusinessLogo  string             `json:"business_logo" validate:"omitempty,url"`
	WebsiteURL    string             `json:"website_url" validate:"omitempty,url"`
}

// UpdateBusinessProfileInput defines a partial update of a business profile.
type UpdateBusinessProfileInput struct {
	BusinessName  *string              `json:"business_name,omitempty"`
	BusinessType  *string              `json:"business_type,omitempty"`
	BusinessHours *map[string]string   `json:"business_hours,omitempty"`
	Email         *string              `json:"email,omitempty" validate:"omitempty,email"`
	ContactNo     *string              `json:"contact_no,omitempty"`
	BusinessLogo  *string              `json:"business_logo,omitempty" validate:"omitempty,url"`
	WebsiteURL    *string              `json:"website_url,omitempty" validate:"omitempty,url"`
	Location      *UpdateLocationInput `json:"location,omitempty"`
	Account       *UpdateAccountInput  `json:"account,omitempty"`
}
