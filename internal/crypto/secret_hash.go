// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// ErrMalformedHash is returned by Verify for digests it can not parse.
var ErrMalformedHash = errors.New("malformed secret hash")

// Argon2Params are the Argon2id tuning parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params follows the OWASP (2024) recommendation:
// 1 iteration, 64 MiB, 4 lanes, 32-byte output.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

type argon2Hasher struct {
	params Argon2Params
}

// NewSecretHasher returns a [SecretHasher] using DefaultArgon2Params.
func NewSecretHasher() SecretHasher {
	return NewSecretHasherWithParams(DefaultArgon2Params)
}

// NewSecretHasherWithParams returns a [SecretHasher] with custom parameters.
// Verify always uses the parameters embedded in the digest, so changing
// them does not invalidate existing hashes.
func NewSecretHasherWithParams(p Argon2Params) SecretHasher {
	return &argon2Hasher{params: p}
}

// Hash implements [SecretHasher]. The result has the PHC layout
//
//	argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt b64>$<hash b64>
func (h *argon2Hasher) Hash(secret string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	p := h.params
	sum := argon2.IDKey([]byte(secret), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// Verify implements [SecretHasher]. Comparison is constant time.
func (h *argon2Hasher) Verify(secret, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedHash
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey([]byte(secret), salt, p.Time, p.Memory, p.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
