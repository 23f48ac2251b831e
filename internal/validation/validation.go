// Package validation holds the input checks shared by the services.
package validation

import (
	"regexp"
	"strings"
)

const MinNameLength = 3

// Deliberately permissive: local@domain with 2-4 letter TLD, no full
// RFC 5322 parsing.
var emailRegex = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)

// ValidEmail reports whether email looks like local@domain.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidName reports whether name has at least MinNameLength characters
// after trimming.
func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= MinNameLength
}

// NotBlank reports whether s contains any non-space character.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
