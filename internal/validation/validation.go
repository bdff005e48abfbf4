// Package validation holds the pure field validators used by the service
// layer. Validators never touch the store.
package validation

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// Optional leading +, then 1-4 digit groups separated by space, dot or dash,
// with an optional parenthesized area code.
var phonePattern = regexp.MustCompile(`^\+?(?:\d{1,4}[ .-]?)?(?:\(\d{1,4}\)[ .-]?)?\d{1,4}(?:[ .-]?\d{1,4}){0,6}$`)

// NormalizeEmail validates raw as a bare address and returns its canonical
// lowercased form. Normalization is idempotent: the returned value is itself
// a valid input.
func NormalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Name != "" || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}

// ValidatePhone checks raw against a permissive international phone pattern
// and returns it unchanged.
func ValidatePhone(raw string) (string, error) {
	if !phonePattern.MatchString(raw) {
		return "", ErrInvalidPhone
	}
	return raw, nil
}
