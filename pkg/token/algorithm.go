package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/dmitrymomot/lostoken/pkg/secrets"
)

// Algorithm names the keyed hash used for signatures. Every algorithm
// produces a 32-byte digest.
type Algorithm string

const (
	AlgorithmBlake2b Algorithm = "blake2b"
	AlgorithmBlake2s Algorithm = "blake2s"
	AlgorithmBlake3  Algorithm = "blake3"
	AlgorithmHS256   Algorithm = "hmac-sha256"
)

// DigestSize is the length of every signature digest in bytes.
const DigestSize = 32

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = AlgorithmBlake2b

// Algorithms lists the supported algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBlake2b, AlgorithmBlake2s, AlgorithmBlake3, AlgorithmHS256}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmBlake2b, AlgorithmBlake2s, AlgorithmBlake3, AlgorithmHS256:
		return true
	default:
		return false
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// acceptsKey reports whether the primitive takes a key of length n as is.
func (a Algorithm) acceptsKey(n int) bool {
	switch a {
	case AlgorithmBlake2b:
		return n > 0 && n <= blake2b.Size
	case AlgorithmBlake2s:
		return n > 0 && n <= blake2s.Size
	case AlgorithmBlake3:
		return n == 32
	case AlgorithmHS256:
		return n > 0
	default:
		return false
	}
}

// fittedKeySize is the key length produced by derivation when the
// primitive does not accept the supplied key.
func (a Algorithm) fittedKeySize() int {
	switch a {
	case AlgorithmBlake2b:
		return blake2b.Size
	default:
		return 32
	}
}

// keyedHash hands out independent hash states for one algorithm and key.
// Pooled states are Reset before every use, which restores the keyed
// initial state, so no digest state ever crosses calls.
type keyedHash struct {
	alg  Algorithm
	pool sync.Pool
}

func newKeyedHash(alg Algorithm, key []byte) (*keyedHash, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	if len(key) == 0 {
		return nil, ErrMissingKey
	}

	var k []byte
	if alg.acceptsKey(len(key)) {
		k = append([]byte(nil), key...)
	} else {
		derived, err := secrets.DeriveKey(key, alg.fittedKeySize(), "lostoken/"+string(alg))
		if err != nil {
			return nil, err
		}
		k = derived
	}

	ctor, err := hashConstructor(alg, k)
	if err != nil {
		return nil, err
	}

	kh := &keyedHash{alg: alg}
	kh.pool.New = func() any { return ctor() }
	return kh, nil
}

// hashConstructor checks that the primitive accepts key and returns a
// constructor that cannot fail afterwards.
func hashConstructor(alg Algorithm, key []byte) (func() hash.Hash, error) {
	switch alg {
	case AlgorithmBlake2b:
		if _, err := blake2b.New256(key); err != nil {
			return nil, err
		}
		return func() hash.Hash {
			h, _ := blake2b.New256(key)
			return h
		}, nil
	case AlgorithmBlake2s:
		if _, err := blake2s.New256(key); err != nil {
			return nil, err
		}
		return func() hash.Hash {
			h, _ := blake2s.New256(key)
			return h
		}, nil
	case AlgorithmBlake3:
		if _, err := blake3.NewKeyed(key); err != nil {
			return nil, err
		}
		return func() hash.Hash {
			h, _ := blake3.NewKeyed(key)
			return h
		}, nil
	case AlgorithmHS256:
		return func() hash.Hash {
			return hmac.New(sha256.New, key)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

// sum returns the digest of payload computed on a private hash state.
func (k *keyedHash) sum(payload []byte) []byte {
	h := k.pool.Get().(hash.Hash)
	h.Reset()
	_, _ = h.Write(payload)
	out := h.Sum(make([]byte, 0, DigestSize))
	k.pool.Put(h)
	return out
}
