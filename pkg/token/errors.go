package token

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can branch on it.
type ErrorKind uint8

const (
	// KindValidation means the token is structurally malformed.
	KindValidation ErrorKind = iota + 1
	// KindSignature means the recomputed signature does not match.
	KindSignature
	// KindExpiration means the token's expiration has passed.
	KindExpiration
	// KindArgument means Sign was called with an invalid identifier or expiration.
	KindArgument
	// KindRange means a decoded number does not fit the requested native type.
	KindRange
	// KindConfig means the signer could not be constructed.
	KindConfig
)

// Kind sentinels. Every *Error matches exactly one of them with errors.Is.
var (
	ErrInvalidToken      = errors.New("token: the provided token is invalid")
	ErrSignatureMismatch = errors.New("token: the provided token's signature doesn't match its contents")
	ErrTokenExpired      = errors.New("token: the provided token is expired")
	ErrArgument          = errors.New("token: invalid argument")
	ErrRange             = errors.New("token: value cannot be expressed as int64")
	ErrConfig            = errors.New("token: invalid signer configuration")
)

// Specific causes, wrapped inside *Error.
var (
	ErrMissingID            = errors.New("token: id must be provided")
	ErrNegativeID           = errors.New("token: numeric id must not be negative")
	ErrInvalidID            = errors.New("token: string id must be valid utf-8 and must not start with NUL")
	ErrNegativeExpiration   = errors.New("token: expiration must not be negative")
	ErrMissingKey           = errors.New("token: signing key must not be empty")
	ErrUnsupportedAlgorithm = errors.New("token: unsupported algorithm")
	ErrInvalidTTL           = errors.New("token: invalid default ttl")
	ErrInvalidBigIntMode    = errors.New("token: invalid bigint mode")
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSignature:
		return "signature"
	case KindExpiration:
		return "expiration"
	case KindArgument:
		return "argument"
	case KindRange:
		return "range"
	case KindConfig:
		return "config"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrInvalidToken
	case KindSignature:
		return ErrSignatureMismatch
	case KindExpiration:
		return ErrTokenExpired
	case KindArgument:
		return ErrArgument
	case KindRange:
		return ErrRange
	case KindConfig:
		return ErrConfig
	default:
		return nil
	}
}

// Error is the failure type returned by this package.
type Error struct {
	Kind ErrorKind
	// Msg is a human readable detail, may be empty.
	Msg string
	// Err is the specific cause, may be nil.
	Err error
}

func (e *Error) Error() string {
	base := e.Kind.sentinel()
	if base == nil {
		base = errors.New("token: unknown error")
	}
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", base, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", base, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", base, e.Msg)
	default:
		return base.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the ErrorKind of err if it is, or wraps, an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func invalid(msg string, cause error) *Error {
	return newError(KindValidation, cause, msg)
}

func argument(cause error) *Error {
	return newError(KindArgument, cause, "")
}

func configError(cause error, msg string) *Error {
	return newError(KindConfig, cause, msg)
}
