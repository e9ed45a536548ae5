package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "sarah@harmonysuite.com", "manager", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "sarah@harmonysuite.com", claims.Subject)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("")
	assert.Error(t, err)

	_, err = ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(1, "mike@harmonysuite.com", "front-desk", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}
