package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService seals and opens values persisted in the secure store.
//
// It stands in for the platform keychain: a 32-byte device key, kept in a
// key file next to the database, encrypts every value with AES-256-GCM.
// The service knows nothing about storage keys or note structure.
type KeyChainService interface {
	// Seal encrypts plaintext with the device key and returns
	// base64(nonce ‖ ciphertext).
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails when the blob is not valid base64, is
	// shorter than a nonce, or does not authenticate under the device key.
	Open(sealed string) (string, error)
}

// SecretHasher turns short user secrets (PINs, recovery answers) into
// salted, slow hashes and verifies candidates against them.
type SecretHasher interface {
	// Hash returns an encoded Argon2id digest of secret with a fresh salt.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches the encoded digest. A malformed
	// digest is an error; a mismatch is (false, nil).
	Verify(secret, encoded string) (bool, error)
}
