package base89

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// Alphabet lists the digits in value order: A-Z, a-z, 0-9 followed by the
// cookie-safe punctuation. Index in this string is the digit value.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&'()*+-/:<=>?@[]^_`{|}~"

// Base is the radix of the numeral system.
const Base = len(Alphabet)

var (
	bigBase = big.NewInt(int64(Base))

	// digitValues maps a byte to its digit value, -1 for bytes outside the alphabet.
	digitValues = func() [256]int8 {
		var t [256]int8
		for i := range t {
			t[i] = -1
		}
		for i := 0; i < len(Alphabet); i++ {
			t[Alphabet[i]] = int8(i)
		}
		return t
	}()
)

// EncodeUint64 encodes n. It produces the same output as EncodeInt for the
// equivalent big.Int without allocating one.
func EncodeUint64(n uint64) string {
	// 89^10 > 2^64, so ten digits always suffice.
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = Alphabet[n%uint64(Base)]
		n /= uint64(Base)
		if n == 0 {
			break
		}
	}
	return string(buf[i:])
}

// EncodeInt encodes a non-negative integer. Zero encodes to the single digit
// at index 0. A nil n is treated as zero.
func EncodeInt(n *big.Int) (string, error) {
	if n == nil || n.Sign() == 0 {
		return Alphabet[:1], nil
	}
	if n.Sign() < 0 {
		return "", ErrNegative
	}
	if n.IsUint64() {
		return EncodeUint64(n.Uint64()), nil
	}

	v := new(big.Int).Set(n)
	rem := new(big.Int)
	digits := make([]byte, 0, len(v.Bytes())*5/4+1)
	for v.Sign() > 0 {
		v.QuoRem(v, bigBase, rem)
		digits = append(digits, Alphabet[rem.Int64()])
	}

	// Digits were produced least significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// DecodeInt evaluates s as a base89 number. The empty string decodes to zero.
func DecodeInt(s string) (*big.Int, error) {
	v := new(big.Int)
	d := new(big.Int)
	for i := 0; i < len(s); i++ {
		dv := digitValues[s[i]]
		if dv < 0 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		v.Mul(v, bigBase)
		v.Add(v, d.SetInt64(int64(dv)))
	}
	return v, nil
}

// EncodeBytes encodes b read as a big-endian unsigned integer. Leading zero
// bytes do not contribute to the value and are lost.
func EncodeBytes(b []byte) string {
	s, _ := EncodeInt(new(big.Int).SetBytes(b))
	return s
}

// DecodeBytes decodes s into the minimal big-endian byte form of its value.
// A zero value yields an empty, non-nil slice.
func DecodeBytes(s string) ([]byte, error) {
	v, err := DecodeInt(s)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, v.Bytes()...), nil
}

// EncodeString encodes the UTF-8 bytes of s.
func EncodeString(s string) string {
	return EncodeBytes([]byte(s))
}

// DecodeString decodes s and interprets the result as UTF-8 text.
func DecodeString(s string) (string, error) {
	b, err := DecodeBytes(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// IsCanonical reports whether s is the shortest encoding of its value: it is
// non-empty, uses only alphabet characters, and has no leading zero digit
// unless it is the zero value itself.
func IsCanonical(s string) bool {
	if s == "" {
		return false
	}
	if len(s) > 1 && s[0] == Alphabet[0] {
		return false
	}
	for i := 0; i < len(s); i++ {
		if digitValues[s[i]] < 0 {
			return false
		}
	}
	return true
}
