package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the size of generated keys.
	KeySize = 32

	// SaltSize is the number of random bytes behind a generated salt.
	SaltSize = 32

	// maxDerivedSize is the HKDF-SHA-256 output limit (255 * hash size).
	maxDerivedSize = 255 * sha256.Size
)

// GenerateKey creates a new random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrRandomSource, err)
	}
	return key, nil
}

// GenerateSalt returns 32 random bytes, hex encoded.
func GenerateSalt() (string, error) {
	b := make([]byte, SaltSize)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}
	return hex.EncodeToString(b), nil
}

// DeriveKey expands key into exactly size bytes with HKDF-SHA-256. The info
// string separates derivations for different purposes; the same key, size and
// info always produce the same output.
func DeriveKey(key []byte, size int, info string) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if size <= 0 || size > maxDerivedSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, size)
	}

	r := hkdf.New(sha256.New, key, nil, []byte(info))
	out := make([]byte, size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return out, nil
}

// Wipe zeroes b. Callers use it on temporary copies of key material.
func Wipe(b []byte) {
	clear(b)
}
