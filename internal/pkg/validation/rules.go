// Package validation holds the input rules shared by the auth and catalog
// services: email format, password strength and the wire formats for dates
// and times.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Wire formats for calendar fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 8

// specialChars is the set of characters that count towards the
// special-character password requirement.
const specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?/`~"

// emailPattern matches a plain mailbox@domain.tld address.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether email has a valid format.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether password meets the strength policy:
// at least 8 characters, at least one digit and at least one special
// character.
func ValidPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}

	hasDigit := false
	for _, char := range password {
		if unicode.IsDigit(char) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return false
	}

	return strings.ContainsAny(password, specialChars)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseTime parses an HH:MM string.
func ParseTime(value string) (time.Time, error) {
	return time.Parse(TimeLayout, value)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime formats a clock time as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
