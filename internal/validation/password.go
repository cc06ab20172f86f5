package validation

import "unicode"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// HasSpecialChar reports whether the string contains at least one
// non-alphanumeric character.
func HasSpecialChar(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ValidPassword reports whether the password meets the platform policy.
func ValidPassword(s string) bool {
	return len(s) >= MinPasswordLength && HasSpecialChar(s)
}
