package token

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/lostoken/pkg/base89"
	"github.com/dmitrymomot/lostoken/pkg/logger"
	"github.com/dmitrymomot/lostoken/pkg/secrets"
)

const (
	separator  = '.'
	flagString = '0'
	flagNumber = '1'
)

// Signer signs and validates tokens with one key, salt and configuration.
// It is immutable and safe for concurrent use.
type Signer struct {
	hash *keyedHash
	salt string
	ttl  time.Duration
	mode BigIntMode
	now  func() time.Time
	log  *slog.Logger
}

// Claims is the content of a validated token.
type Claims struct {
	ID ID
	// Expires is the expiration in Unix seconds.
	Expires int64
	// ExpiresBig is set only when the signer uses BigIntAlways.
	ExpiresBig *big.Int
}

// ExpiresAt returns the expiration as a time.Time.
func (c Claims) ExpiresAt() time.Time {
	return ExpirationTime(c.Expires)
}

// maxUnixSeconds is the largest value time.Unix accepts without its internal
// epoch offset overflowing.
const maxUnixSeconds = math.MaxInt64 - 62135596800

// ExpirationTime converts an expiration in Unix seconds to a time.Time.
// Values beyond the range of time.Time are clamped to its largest instant.
func ExpirationTime(expires int64) time.Time {
	return time.Unix(min(expires, maxUnixSeconds), 0)
}

// New creates a Signer. The key must not be empty. An empty salt is replaced
// by 32 random bytes, hex encoded; tokens signed with a generated salt can
// only be validated by the same Signer value.
func New(key []byte, salt string, opts ...Option) (*Signer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if len(o.errs) > 0 {
		return nil, configError(errors.Join(o.errs...), "")
	}
	if len(key) == 0 {
		return nil, configError(ErrMissingKey, "")
	}

	log := logger.OrDiscard(o.log).With(logger.Component("token"))

	if salt == "" {
		generated, err := secrets.GenerateSalt()
		if err != nil {
			return nil, configError(err, "generate salt")
		}
		salt = generated
		log.Debug("generated random salt")
	}

	kh, err := newKeyedHash(o.alg, key)
	if err != nil {
		return nil, configError(err, "keyed hash")
	}

	log.Debug("signer ready", logger.Group("signer",
		logger.Algorithm(kh.alg),
		slog.Duration("default_ttl", o.ttl),
		slog.String("bigint_mode", o.mode.String()),
	))

	return &Signer{
		hash: kh,
		salt: salt,
		ttl:  o.ttl,
		mode: o.mode,
		now:  o.now,
		log:  log,
	}, nil
}

// Algorithm returns the configured keyed hash.
func (s *Signer) Algorithm() Algorithm {
	return s.hash.alg
}

// DefaultTTL returns the lifetime used by Sign.
func (s *Signer) DefaultTTL() time.Duration {
	return s.ttl
}

// BigIntMode returns the numeric narrowing mode used by Validate.
func (s *Signer) BigIntMode() BigIntMode {
	return s.mode
}

// Now returns the current time as seen by the signer's clock.
func (s *Signer) Now() time.Time {
	return s.now()
}

// Sign issues a token for id that expires after the default TTL.
func (s *Signer) Sign(id ID) (string, error) {
	return s.SignUntil(id, s.now().Add(s.ttl).Unix())
}

// SignAt issues a token for id expiring at t, truncated to whole seconds.
func (s *Signer) SignAt(id ID, t time.Time) (string, error) {
	return s.SignUntil(id, t.Unix())
}

// SignUntil issues a token for id expiring at the given Unix time in seconds.
// Expirations in the past are accepted; such tokens fail validation unless
// expiration is ignored.
func (s *Signer) SignUntil(id ID, expires int64) (string, error) {
	tok, err := s.sign(id, expires)
	if err != nil {
		s.log.Debug("token signing rejected", logger.IDKind(id.Kind()), logger.Error(err))
		return "", err
	}
	return tok, nil
}

func (s *Signer) sign(id ID, expires int64) (string, error) {
	if err := id.validate(); err != nil {
		return "", argument(err)
	}
	if expires < 0 {
		return "", argument(ErrNegativeExpiration)
	}

	exp := strconv.FormatInt(expires, 10)
	sig := s.signature(id.String(), exp)

	var flag byte
	var encID string
	switch id.kind {
	case IDString:
		flag, encID = flagString, base89.EncodeString(id.str)
	case IDInt:
		flag, encID = flagNumber, base89.EncodeUint64(uint64(id.num))
	default:
		enc, err := base89.EncodeInt(id.big)
		if err != nil {
			return "", argument(ErrNegativeID)
		}
		flag, encID = flagNumber, enc
	}
	encExp := base89.EncodeUint64(uint64(expires))

	var b strings.Builder
	b.Grow(1 + len(encID) + 1 + len(encExp) + 1 + len(sig))
	b.WriteByte(flag)
	b.WriteString(encID)
	b.WriteByte(separator)
	b.WriteString(encExp)
	b.WriteByte(separator)
	b.WriteString(sig)
	return b.String(), nil
}

// Validate verifies tok and returns its claims. Checks run in order:
// structure, signature, expiration (unless IgnoreExpiration is given), then
// numeric narrowing.
func (s *Signer) Validate(tok string, opts ...ValidateOption) (Claims, error) {
	var vo validateOptions
	for _, opt := range opts {
		opt(&vo)
	}

	claims, err := s.validate(tok, vo)
	if err != nil {
		kind, _ := KindOf(err)
		s.log.Debug("token validation failed", logger.ErrorKind(kind), logger.Error(err))
		return Claims{}, err
	}
	return claims, nil
}

func (s *Signer) validate(tok string, vo validateOptions) (Claims, error) {
	segments := strings.Split(tok, string(separator))
	if len(segments) != 3 {
		return Claims{}, invalid("expected 3 segments, got "+strconv.Itoa(len(segments)), nil)
	}
	idSeg, expSeg, sigSeg := segments[0], segments[1], segments[2]

	if len(idSeg) < 2 || expSeg == "" || sigSeg == "" {
		return Claims{}, invalid("empty segment", nil)
	}

	// Non-canonical digits would let several strings decode to the same
	// signed value.
	body := idSeg[1:]
	if !base89.IsCanonical(body) {
		return Claims{}, invalid("malformed id segment", nil)
	}
	if !base89.IsCanonical(expSeg) {
		return Claims{}, invalid("malformed expiration segment", nil)
	}

	var num *big.Int
	var text string
	switch idSeg[0] {
	case flagNumber:
		n, err := base89.DecodeInt(body)
		if err != nil {
			return Claims{}, invalid("malformed id segment", err)
		}
		num = n
	case flagString:
		str, err := base89.DecodeString(body)
		if err != nil {
			return Claims{}, invalid("malformed id segment", err)
		}
		text = str
	default:
		return Claims{}, invalid("unknown id type flag", nil)
	}

	exp, err := base89.DecodeInt(expSeg)
	if err != nil {
		return Claims{}, invalid("malformed expiration segment", err)
	}

	natural := text
	if num != nil {
		natural = num.String()
	}
	expected := s.signature(natural, exp.String())
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sigSeg)) != 1 {
		return Claims{}, newError(KindSignature, nil, "")
	}

	if !vo.ignoreExpiration && s.expired(exp) {
		return Claims{}, newError(KindExpiration, nil, "")
	}

	return s.claims(num, text, exp)
}

// expired reports whether exp is at or before the current time, in whole
// seconds.
func (s *Signer) expired(exp *big.Int) bool {
	return exp.Cmp(big.NewInt(s.now().Unix())) <= 0
}

// claims narrows the decoded values according to the BigIntMode.
func (s *Signer) claims(num *big.Int, text string, exp *big.Int) (Claims, error) {
	var c Claims

	if s.mode == BigIntAlways {
		c.ExpiresBig = exp
		if exp.IsInt64() {
			c.Expires = exp.Int64()
		}
		if num != nil {
			c.ID = ID{kind: IDBigInt, big: num}
		} else {
			c.ID = StringID(text)
		}
		return c, nil
	}

	if !exp.IsInt64() {
		return Claims{}, newError(KindRange, nil, "expiration exceeds int64")
	}
	c.Expires = exp.Int64()

	if num == nil {
		c.ID = StringID(text)
		return c, nil
	}
	if !num.IsInt64() {
		return Claims{}, newError(KindRange, nil, "id exceeds int64")
	}
	c.ID = IntID(num.Int64())
	return c, nil
}

// signature returns the base89 encoded keyed hash of the canonical payload
// "<id>.<expires>.<salt>".
func (s *Signer) signature(id, expires string) string {
	payload := make([]byte, 0, len(id)+len(expires)+len(s.salt)+2)
	payload = append(payload, id...)
	payload = append(payload, separator)
	payload = append(payload, expires...)
	payload = append(payload, separator)
	payload = append(payload, s.salt...)
	return base89.EncodeBytes(s.hash.sum(payload))
}
