// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DeviceKeySize is the AES-256 key length in bytes.
const DeviceKeySize = 32

var (
	// ErrInvalidKeyLength is returned for device keys that are not
	// DeviceKeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid device key length")

	// ErrCiphertextTooShort is returned when a sealed blob can not even
	// hold the GCM nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	aead cipher.AEAD
}

// NewKeyChainService builds a [KeyChainService] around deviceKey.
// Returns [ErrInvalidKeyLength] unless the key is DeviceKeySize bytes.
func NewKeyChainService(deviceKey []byte) (KeyChainService, error) {
	if len(deviceKey) != DeviceKeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(deviceKey))
	}

	block, err := aes.NewCipher(deviceKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &keyChainService{aead: gcm}, nil
}

// GenerateDeviceKey reads DeviceKeySize random bytes from the OS CSPRNG.
func GenerateDeviceKey() ([]byte, error) {
	key := make([]byte, DeviceKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// LoadOrCreateDeviceKey reads the device key from path. When the file does
// not exist a new key is generated and written with mode 0600, creating the
// parent directory if needed. A file of the wrong size is an error: silently
// replacing it would make every stored value unreadable.
func LoadOrCreateDeviceKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != DeviceKeySize {
			return nil, fmt.Errorf("%w: key file %s holds %d bytes", ErrInvalidKeyLength, path, len(key))
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read device key: %w", err)
	}

	key, err = GenerateDeviceKey()
	if err != nil {
		return nil, fmt.Errorf("generate device key: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create device key dir: %w", err)
		}
	}
	if err = os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write device key: %w", err)
	}

	return key, nil
}

// Seal implements [KeyChainService]. A random nonce is prepended to the
// ciphertext so Open can split it out: blob = nonce ‖ ciphertext.
func (k *keyChainService) Seal(plaintext string) (string, error) {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := k.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeyChainService].
func (k *keyChainService) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode sealed value: %w", err)
	}

	nonceSize := k.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// An authentication failure here means a different device key or a
	// tampered value.
	plaintext, err := k.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plaintext), nil
}
