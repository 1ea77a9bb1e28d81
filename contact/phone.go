package contact

import (
	"github.com/ttacon/libphonenumber"
)

// PhoneRegion returns the ISO region code (e.g. "US") of an E.164 number, or
// "" when it can't be parsed. It is informational only and never used to
// reject a contact.
func PhoneRegion(number string) string {
	if number == "" {
		return ""
	}

	num, err := libphonenumber.Parse(number, "")
	if err != nil {
		return ""
	}

	return libphonenumber.GetRegionCodeForNumber(num)
}
