package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewakita/sewakita-backend/pkg/config"
)

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := testPasswordConfig()

	encoded, err := HashPassword("rahasia-123", cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	ok, err := VerifyPassword("rahasia-123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("salah", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("", testPasswordConfig())
	require.Error(t, err)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8,t=1$c2FsdA$aGFzaA!!!",
	}
	for _, encoded := range cases {
		_, err := VerifyPassword("whatever", encoded)
		assert.ErrorIs(t, err, ErrInvalidHash, "hash %q", encoded)
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	cfg := testPasswordConfig()

	first, err := HashPassword("same-password", cfg)
	require.NoError(t, err)
	second, err := HashPassword("same-password", cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
