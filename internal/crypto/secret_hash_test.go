package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// light parameters keep the suite fast; production uses DefaultArgon2Params.
var testArgon2Params = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

func TestSecretHasher_HashAndVerify(t *testing.T) {
	h := NewSecretHasherWithParams(testArgon2Params)

	encoded, err := h.Hash("Secur3!ty")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, encoded, "Secur3!ty")

	ok, err := h.Verify("Secur3!ty", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSecretHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewSecretHasherWithParams(testArgon2Params)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

// TestSecretHasher_VerifyUsesEmbeddedParams verifies that a hasher with
// different settings still verifies digests produced by another one.
func TestSecretHasher_VerifyUsesEmbeddedParams(t *testing.T) {
	encoded, err := NewSecretHasherWithParams(testArgon2Params).Hash("pin")
	require.NoError(t, err)

	other := NewSecretHasherWithParams(Argon2Params{Time: 2, Memory: 2048, Threads: 2, KeyLen: 16})
	ok, err := other.Verify("pin", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSecretHasher_MalformedDigest(t *testing.T) {
	h := NewSecretHasherWithParams(testArgon2Params)

	for _, encoded := range []string{
		"",
		"plaintext-pin",
		"bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"argon2id$v=18$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
		"argon2id$v=19$m=1024,t=1,p=1$***$aGFzaA",
		"argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
	} {
		_, err := h.Verify("pin", encoded)
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}
