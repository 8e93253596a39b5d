package auth

import (
	"strings"
	"testing"

	"planner/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sealerWithKey(key string) *config.Config {
	cfg := &config.Config{}
	cfg.Session.EncryptionKey = key

	return cfg
}

func TestTokenSealer_RoundTrip(t *testing.T) {
	sealer := NewTokenSealer(sealerWithKey("correct horse battery staple"))

	sealed, err := sealer.Seal("bearer-token-value")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "bearer-token-value")

	plain, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "bearer-token-value", plain)
}

func TestTokenSealer_FreshNoncePerSeal(t *testing.T) {
	sealer := NewTokenSealer(sealerWithKey("k"))

	a, err := sealer.Seal("same")
	require.NoError(t, err)
	b, err := sealer.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenSealer_WrongKey(t *testing.T) {
	sealed, err := NewTokenSealer(sealerWithKey("first")).Seal("token")
	require.NoError(t, err)

	_, err = NewTokenSealer(sealerWithKey("second")).Open(sealed)
	assert.ErrorIs(t, err, ErrSealedTokenInvalid)

	_, err = NewTokenSealer(sealerWithKey("")).Open(sealed)
	assert.ErrorIs(t, err, ErrSealedTokenInvalid)
}

func TestTokenSealer_PlainWithoutKey(t *testing.T) {
	sealer := NewTokenSealer(sealerWithKey(" "))

	sealed, err := sealer.Seal("token")
	require.NoError(t, err)
	assert.Equal(t, "token", sealed)

	plain, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "token", plain)
}
