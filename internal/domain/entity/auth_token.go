// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the persisted opaque credential returned by login.
// At most one token exists per account; a repeated login returns the
// existing key instead of rotating it.
type AuthToken struct {
	Key       string    // Random 20-byte hex string presented as "Authorization: Token <key>".
	AccountID uuid.UUID // Links this token to the Account it authenticates.
	CreatedAt time.Time // Timestamp of when this token was first issued.
}
