// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credentialed login identity in the system. It is distinct
// from the role-specific profile data that references it: every profile is
// owned by exactly one account, and an account owns at most one profile of
// its role.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Handle       string    // Unique display handle chosen at registration.
	Email        string    // Unique login email. The domain part is lower-cased before storage.
	PasswordHash string    // bcrypt hash of the password. Plaintext is never retained.
	Role         Role      // Which profile variant this account is allowed to own.
	IsActive     bool      // Deactivated accounts cannot authenticate.
	IsStaff      bool      // Staff accounts may list profiles and toggle active flags.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
