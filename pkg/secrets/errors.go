package secrets

import "errors"

var (
	ErrRandomSource        = errors.New("secrets: random source failed")
	ErrKeyDerivationFailed = errors.New("secrets: key derivation failed")
	ErrInvalidKeySize      = errors.New("secrets: invalid key size")
	ErrEmptyKey            = errors.New("secrets: empty key material")
)
