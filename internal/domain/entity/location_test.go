package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FullAddress(t *testing.T) {
	full := &Location{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Country: "USA",
	}
	assert.Equal(t, "1 Main St, Springfield, IL, USA", full.FullAddress())

	// Empty segments keep their place in the joined string.
	cityOnly := &Location{City: "Taipei"}
	assert.Equal(t, ", Taipei, , ", cityOnly.FullAddress())

	empty := &Location{}
	assert.Equal(t, ", , , ", empty.FullAddress())
}

func TestLocation_HasCoordinates(t *testing.T) {
	lat, lon := 25.03, 121.56

	assert.True(t, (&Location{Latitude: &lat, Longitude: &lon}).HasCoordinates())
	assert.False(t, (&Location{Latitude: &lat}).HasCoordinates())
	assert.False(t, (&Location{}).HasCoordinates())
}

func TestRole(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleBusiness.IsValid())
	assert.False(t, Role("merchant").IsValid())

	assert.True(t, RoleUser.IsPerson())
	assert.True(t, RoleAdmin.IsPerson())
	assert.False(t, RoleBusiness.IsPerson())

	assert.True(t, Roles{RoleUser, RoleAdmin}.Contains(RoleAdmin))
	assert.False(t, Roles{RoleUser}.Contains(RoleBusiness))
}

func TestGender(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.True(t, GenderOther.IsValid())
	assert.False(t, Gender("").IsValid())
	assert.False(t, Gender("unknown").IsValid())
}
