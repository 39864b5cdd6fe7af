// Package entity contains the core business objects of the project.
package entity

// Gender is the self-reported gender on a person profile.
type Gender string

const (
	// GenderMale indicates a male person.
	GenderMale Gender = "male"
	// GenderFemale indicates a female person.
	GenderFemale Gender = "female"
	// GenderOther covers every other self-description.
	GenderOther Gender = "other"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}
