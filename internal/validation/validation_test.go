package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	normalized, err := NormalizeEmail("Bob@Example.com")
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", normalized)

	// Normalization is idempotent: the output is valid input.
	again, err := NormalizeEmail(normalized)
	require.NoError(t, err)
	require.Equal(t, normalized, again)
}

func TestNormalizeEmail_TrimsWhitespace(t *testing.T) {
	normalized, err := NormalizeEmail("  alice@example.com ")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", normalized)
}

func TestNormalizeEmail_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not-an-email",
		"@example.com",
		"bob@",
		"Bob Smith <bob@example.com>",
		"bob@example.com, alice@example.com",
	}

	for _, raw := range cases {
		_, err := NormalizeEmail(raw)
		require.ErrorIs(t, err, ErrInvalidEmail, "input %q", raw)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+1-202-555-0143",
		"(020) 7946 0958",
		"+49 30 901820",
		"202.555.0143",
		"12345",
	}
	for _, raw := range valid {
		got, err := ValidatePhone(raw)
		require.NoError(t, err, "input %q", raw)
		require.Equal(t, raw, got)
	}

	invalid := []string{
		"",
		"+",
		"abc",
		"123-abc",
		"++1 202",
	}
	for _, raw := range invalid {
		_, err := ValidatePhone(raw)
		require.ErrorIs(t, err, ErrInvalidPhone, "input %q", raw)
	}
}
