package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/config"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	// MinCost keeps the test fast; the cost only changes work factor.
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, hasher.Check("s3cret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
