package utils

import (
	"html"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)

	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeString strips HTML and escapes what remains. Applied to every
// free-text field an administrator or shopper can author.
func SanitizeString(input string) string {
	sanitized := htmlTagRegex.ReplaceAllString(input, "")
	return strings.TrimSpace(html.EscapeString(sanitized))
}

// ValidateEmail checks the email format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone checks a phone number, tolerating the leading +
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// ValidatePassword enforces the minimum password policy
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain a lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain an uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain a number"
	}
	return true, ""
}
