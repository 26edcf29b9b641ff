package entities

// Gender is one of a closed set of codes.
type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderOther  Gender = "OTHER"
)

// Genders lists every accepted code in display order.
var Genders = []Gender{GenderFemale, GenderMale, GenderOther}

func (g Gender) Valid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	}
	return false
}

func (g Gender) String() string { return string(g) }
