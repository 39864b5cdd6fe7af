// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PersonProfile is the profile shape shared by the user and admin variants.
// The two variants live in separate tables but carry identical fields, so a
// single entity serves both; the repository is told which table to address.
type PersonProfile struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	AccountID    uuid.UUID // The owning account; one profile per account.
	LocationID   uuid.UUID // The profile's single location.
	Location     *Location // Loaded location, nil when not preloaded.
	FirstName    string    // Given name.
	MiddleName   string    // Middle name, may be empty.
	LastName     string    // Family name.
	Email        string    // Contact email on the profile, unique per variant; independent of the account login email.
	Gender       Gender    // Self-reported gender.
	DateOfBirth  time.Time // Date of birth, zero when not provided.
	ContactNo    string    // Phone number, free-form.
	ProfileImage string    // URL of the profile image, may be empty.
	Interests    []string  // Free-form interest tags.
	CreatedAt    time.Time // Timestamp of when this profile was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// BusinessProfile is the profile variant owned by business accounts.
type BusinessProfile struct {
	ID            uuid.UUID         // The Global Unique Identifier (GUID) for the profile.
	AccountID     uuid.UUID         // The owning account; one profile per account.
	LocationID    uuid.UUID         // The profile's single location.
	Location      *Location         // Loaded location, nil when not preloaded.
	BusinessName  string            // Registered business name.
	BusinessType  string            // Free-form category, e.g. "restaurant".
	BusinessHours map[string]string // Opening hours keyed by weekday name.
	Email         string            // Contact email, unique among business profiles.
	ContactNo     string            // Phone number, free-form.
	BusinessLogo  string            // URL of the business logo, may be empty.
	WebsiteURL    string            // Public website, may be empty.
	CreatedAt     time.Time         // Timestamp of when this profile was created.
	UpdatedAt     time.Time         // Timestamp of the last modification.
}
