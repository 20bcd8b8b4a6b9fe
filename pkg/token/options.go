package token

import (
	"log/slog"
	"time"
)

// Option configures a Signer.
type Option func(*options)

type options struct {
	ttl  time.Duration
	alg  Algorithm
	mode BigIntMode
	now  func() time.Time
	log  *slog.Logger
	errs []error
}

func defaultOptions() *options {
	return &options{
		ttl:  DefaultTTL,
		alg:  DefaultAlgorithm,
		mode: BigIntNever,
		now:  time.Now,
	}
}

// WithDefaultTTL sets the lifetime used by Sign. It is truncated to whole
// seconds and must be at least one second.
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) {
		d = d.Truncate(time.Second)
		if d < time.Second {
			o.errs = append(o.errs, ErrInvalidTTL)
			return
		}
		o.ttl = d
	}
}

// WithDefaultTTLString sets the lifetime used by Sign from a human readable
// duration such as "15m" or "2 days". See ParseTTL.
func WithDefaultTTLString(s string) Option {
	return func(o *options) {
		d, err := ParseTTL(s)
		if err != nil {
			o.errs = append(o.errs, err)
			return
		}
		o.ttl = d
	}
}

// WithAlgorithm selects the keyed hash.
func WithAlgorithm(alg Algorithm) Option {
	return func(o *options) {
		if !alg.Valid() {
			o.errs = append(o.errs, ErrUnsupportedAlgorithm)
			return
		}
		o.alg = alg
	}
}

// WithBigIntMode controls numeric narrowing in Validate.
func WithBigIntMode(m BigIntMode) Option {
	return func(o *options) {
		if m != BigIntNever && m != BigIntAlways {
			o.errs = append(o.errs, ErrInvalidBigIntMode)
			return
		}
		o.mode = m
	}
}

// WithClock replaces time.Now. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger for debug records about failed validations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// ValidateOption adjusts a single Validate call.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	ignoreExpiration bool
}

// IgnoreExpiration accepts tokens whose expiration has passed. The signature
// is still verified.
func IgnoreExpiration() ValidateOption {
	return func(o *validateOptions) {
		o.ignoreExpiration = true
	}
}
