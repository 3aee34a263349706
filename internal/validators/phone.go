package validators

import (
	"regexp"
	"strings"
)

// Spanish mobile/landline numbers: nine digits starting 6-9, with an optional
// +34 or 0034 prefix. Spaces are stripped before matching.
var phonePattern = regexp.MustCompile(`^(\+34|0034)?[6-9][0-9]{8}$`)

// IsPhoneValid reports whether the phone number is acceptable. The field is
// optional, so an empty value passes; anything else must match the pattern.
func IsPhoneValid(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}
	stripped := strings.ReplaceAll(phone, " ", "")
	return phonePattern.MatchString(stripped)
}
