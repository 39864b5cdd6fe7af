// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of account (and therefore profile variant) in the system.
type Role string

const (
	// RoleUser indicates a regular user account.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
	// RoleBusiness indicates a business account.
	RoleBusiness Role = "business"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleBusiness:
		return true
	default:
		return false
	}
}

// IsPerson reports whether the role owns a person-shaped profile
// (regular users and admins share the same profile shape).
func (r Role) IsPerson() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
