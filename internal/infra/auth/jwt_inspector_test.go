package auth

import (
	"testing"
	"time"

	"planner/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ReadsExpiryWithoutKey(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "user-1", "exp": exp.Unix()})

	info, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", info.Subject)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(exp.Add(time.Second)))
}

func TestJWTInspector_NoExpiryNeverExpires(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})

	info, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)

	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func TestJWTInspector_MalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "opaque-session-token"},
		{"bad payload", "eyJhbGciOiJIUzI1NiJ9.!!!.sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJWTInspector().Inspect(tt.token)
			assert.ErrorIs(t, err, service.ErrMalformedToken)
		})
	}
}
