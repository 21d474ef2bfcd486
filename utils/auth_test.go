package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestInitJWTSecret(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		require.Error(t, InitJWTSecret())
	})

	t.Run("too short", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "short")
		require.Error(t, InitJWTSecret())
	})

	t.Run("valid secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
		require.NoError(t, InitJWTSecret())
		require.NotEmpty(t, JWTSecret)
	})
}

func TestGenerateOperatorToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	require.NoError(t, InitJWTSecret())

	signed, err := GenerateOperatorToken()
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	}, jwt.WithExpirationRequired())
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "operator", claims["role"])
	require.Contains(t, claims, "exp")
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("smartpark-operator-21")
	require.NoError(t, err)

	require.True(t, CheckPasswordHash("smartpark-operator-21", hash))
	require.False(t, CheckPasswordHash("wrong-password", hash))
}
