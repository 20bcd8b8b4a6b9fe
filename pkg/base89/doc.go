// Package base89 implements a positional numeral system over an 89-symbol
// alphabet in which every character is a legal RFC 6265 cookie-octet.
//
// Values are converted through their integer form: integers are written
// digit by digit, byte slices are read as a single big-endian unsigned
// integer, and strings are handled as their UTF-8 bytes. The alphabet order is
// part of the wire format and must never change.
//
// # Usage
//
//	import "github.com/dmitrymomot/lostoken/pkg/base89"
//
//	s := base89.EncodeUint64(123456789) // "B|LA_"
//
//	n, err := base89.DecodeInt(s)
//	if err != nil {
//	    // handle error
//	}
//
//	txt := base89.EncodeString("hello")
//	orig, err := base89.DecodeString(txt)
//
// # Limitations
//
// Leading zero bytes are not preserved by EncodeBytes: []byte{0x00, 0x01} and
// []byte{0x01} both represent the integer 1 and produce the same output. The
// same applies to strings starting with NUL characters. Callers that need an
// exact round trip of arbitrary buffers must carry the length separately.
//
// # Error Handling
//
// Decoders return ErrInvalidCharacter (wrapped with the offending position)
// for input outside the alphabet and DecodeString returns ErrInvalidUTF8 when
// the recovered bytes are not valid UTF-8. Use errors.Is to match them.
package base89
