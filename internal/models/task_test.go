package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTaskCategory(t *testing.T) {
	for _, raw := range []string{"administrative", "creative", "research", "technical"} {
		category, err := ParseTaskCategory(raw)
		require.NoError(t, err)
		require.Equal(t, TaskCategory(raw), category)
	}
}

func TestParseTaskCategory_Unknown(t *testing.T) {
	for _, raw := range []string{"", "Research", "misc", "TECHNICAL"} {
		_, err := ParseTaskCategory(raw)
		require.ErrorIs(t, err, ErrUnknownTaskCategory, "input %q", raw)
	}
}
