// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"roster/internal/domain/entity"
)

// View models keep credential material (password hashes, token internals)
// out of API responses.

// accountView is the public shape of an account.
type accountView struct {
	ID       string `json:"id"`
	Handle   string `json:"handle"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	IsStaff  bool   `json:"is_staff"`
}

// locationView is the public shape of a location.
type locationView struct {
	ID        string   `json:"id"`
	Street    string   `json:"street"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// personProfileView is the public shape of a user or admin profile.
type personProfileView struct {
	ID           string        `json:"id"`
	AccountID    string        `json:"account_id"`
	Location     *locationView `json:"location,omitempty"`
	FirstName    string        `json:"first_name"`
	MiddleName   string        `json:"middle_name,omitempty"`
	LastName     string        `json:"last_name"`
	Email        string        `json:"email"`
	Gender       string        `json:"gender"`
	DateOfBirth  string        `json:"date_of_birth,omitempty"`
	ContactNo    string        `json:"contact_no,omitempty"`
	ProfileImage string        `json:"profile_image,omitempty"`
	Interests    []string      `json:"interests,omitempty"`
}

// businessProfileView is the public shape of a business profile.
type businessProfileView struct {
	ID            string            `json:"id"`
	AccountID     string            `json:"account_id"`
	Location      *locationView     `json:"location,omitempty"`
	BusinessName  string            `json:"business_name"`
	BusinessType  string            `json:"business_type,omitempty"`
	BusinessHours map[string]string `json:"business_hours,omitempty"`
	Email         string            `json:"email"`
	ContactNo     string            `json:"contact_no,omitempty"`
	BusinessLogo  string            `json:"business_logo,omitempty"`
	WebsiteURL    string            `json:"website_url,omitempty"`
}

// loginView is the public shape of a login result.
type loginView struct {
	Token   string      `json:"token"`
	Account accountView `json:"account"`
}

func toAccountView(account *entity.Account) accountView {
	return accountView{
		ID:       account.ID.String(),
		Handle:   account.Handle,
		Email:    account.Email,
		Role:     account.Role.String(),
		IsActive: account.IsActive,
		IsStaff:  account.IsStaff,
	}
}

func toLocationView(location *entity.Location) *locationView {
	if location == nil {
		return nil
	}

	return &locationView{
		ID:        location.ID.String(),
		Street:    location.Street,
		City:      location.City,
		State:     location.State,
		Country:   location.Country,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

func toPersonProfileView(profile *entity.PersonProfile) personProfileView {
	var dateOfBirth string
	if !profile.DateOfBirth.IsZero() {
		dateOfBirth = profile.DateOfBirth.Format(time.DateOnly)
	}

	return personProfileView{
		ID:           profile.ID.String(),
		AccountID:    profile.AccountID.String(),
		Location:     toLocationView(profile.Location),
		FirstName:    profile.FirstName,
		MiddleName:   profile.MiddleName,
		LastName:     profile.LastName,
		Email:        profile.Email,
		Gender:       profile.Gender.String(),
		DateOfBirth:  dateOfBirth,
		ContactNo:    profile.ContactNo,
		ProfileImage: profile.ProfileImage,
		Interests:    profile.Interests,
	}
}

func toPersonProfileViews(profiles []*entity.PersonProfile) []personProfileView {
	views := make([]personProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, toPersonProfileView(profile))
	}

	return views
}

func toBusinessProfileView(profile *entity.BusinessProfile) businessProfileView {
	return businessProfileView{
		ID:            profile.ID.String(),
		AccountID:     profile.AccountID.String(),
		Location:      toLocationView(profile.Location),
		BusinessName:  profile.BusinessName,
		BusinessType:  profile.BusinessType,
		BusinessHours: profile.BusinessHours,
		Email:         profile.Email,
		ContactNo:     profile.ContactNo,
		BusinessLogo:  profile.BusinessLogo,
		WebsiteURL:    profile.WebsiteURL,
	}
}

func toBusinessProfileViews(profiles []*entity.BusinessProfile) []businessProfileView {
	views := make([]businessProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, toBusinessProfileView(profile))
	}

	return views
}
