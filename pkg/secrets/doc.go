// Package secrets provides the random and derived key material used by token
// signers.
//
// GenerateKey and GenerateSalt read from crypto/rand. DeriveKey stretches or
// compresses arbitrary key material to the exact size a keyed hash primitive
// accepts, using HKDF-SHA-256 with an info string for domain separation.
//
// # Usage
//
//	import "github.com/dmitrymomot/lostoken/pkg/secrets"
//
//	key, err := secrets.GenerateKey()
//	if err != nil {
//	    // handle error
//	}
//
//	salt, err := secrets.GenerateSalt()
//
//	// fit a passphrase to a 32-byte BLAKE3 key
//	k32, err := secrets.DeriveKey([]byte("passphrase"), 32, "lostoken/blake3")
//
// # Error Handling
//
// Errors wrap the package sentinels ErrRandomSource, ErrKeyDerivationFailed
// and ErrInvalidKeySize; use errors.Is to match them.
package secrets
