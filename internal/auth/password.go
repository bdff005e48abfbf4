// Package auth implements the password policy: confirmation matching and
// one-way hashing. The plaintext never leaves this package.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when password and confirm password differ.
var ErrPasswordMismatch = errors.New("password and confirm password not matched")

// ConfirmAndHash checks that both inputs match and returns the bcrypt digest
// of the password.
func ConfirmAndHash(password, confirmPassword string) (string, error) {
	if password != confirmPassword {
		return "", ErrPasswordMismatch
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches a stored digest.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
