package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "admin", claims.Subject)
}

func TestParseAdminTokenWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken("admin", "secret")
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "other-secret")
	require.Error(t, err)
}

func TestParseAdminTokenGarbage(t *testing.T) {
	_, err := ParseAdminToken("not.a.token", "secret")
	require.Error(t, err)
}
