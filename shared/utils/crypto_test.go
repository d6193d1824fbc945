package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err, "token must be URL-safe base64")
	assert.Len(t, raw, tokenBytes)

	t.Run("tokens do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			tok, err := GenerateToken()
			require.NoError(t, err)
			assert.False(t, seen[tok])
			seen[tok] = true
		}
	})
}
