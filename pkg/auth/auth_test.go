package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMaker_RoundTrip(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)

	token, err := maker.Generate("u1", "anna", RoleAdmin)
	require.NoError(t, err)

	claims, err := maker.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "anna", claims.User().Username)
	assert.Equal(t, "u1", claims.User().ID)
}

func TestTokenMaker_Rejects(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)

	expired, err := NewTokenMaker("secret", -time.Minute).Generate("u1", "anna", RoleUser)
	require.NoError(t, err)

	foreign, err := NewTokenMaker("other", time.Hour).Generate("u1", "anna", RoleUser)
	require.NoError(t, err)

	noSubject, err := maker.Generate("", "anna", RoleUser)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"no subject":   noSubject,
		"alg none":     none,
		"garbage":      "not-a-token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := maker.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
