// Package token issues and verifies compact, cookie-safe signed tokens that
// bind an identifier to an expiration timestamp.
//
// Every segment of a token is written in base89 (see pkg/base89), so the
// whole token is a legal RFC 6265 cookie value without any escaping. The
// authentication tag is a keyed hash (BLAKE2b by default) over a canonical
// payload that includes a per-signer salt.
//
// Token format: <flag><id>.<expires>.<signature>
//
// The flag is '1' for numeric identifiers and '0' for string identifiers, so
// the identifier comes back with the type it was signed with.
//
// # Usage
//
//	import "github.com/dmitrymomot/lostoken/pkg/token"
//
//	signer, err := token.New([]byte(os.Getenv("TOKEN_KEY")), os.Getenv("TOKEN_SALT"),
//	    token.WithDefaultTTLString("2 days"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := signer.Sign(token.IntID(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	claims, err := signer.Validate(tok)
//	switch {
//	case errors.Is(err, token.ErrTokenExpired):
//	    // ask the user to sign in again
//	case err != nil:
//	    // forged or malformed token
//	}
//	uid, _ := claims.ID.Int64()
//
// # Identifiers
//
// ID is a sum type over text and non-negative integers. Numeric identifiers
// are returned as int64 (IDInt) unless the signer uses BigIntAlways, in
// which case they are returned as *big.Int (IDBigInt). With BigIntNever a
// numeric identifier above math.MaxInt64 fails with ErrRange.
//
// The signed payload carries the identifier in its natural string form and
// no type tag, so StringID("123") and IntID(123) produce the same signature.
// Anyone holding a token can re-encode its id segment as the other type and
// it will still validate. Callers that accept both kinds must not let the
// type of the returned ID grant anything the value alone would not.
//
// A string identifier must be valid UTF-8 and must not start with NUL;
// leading zero bytes do not survive the base89 integer encoding.
//
// # Concurrency
//
// A Signer is immutable after New and safe for concurrent use. Each Sign and
// Validate call works on its own keyed hash state taken from a pool.
//
// # Error Handling
//
// Failures are returned as *Error values carrying an ErrorKind. errors.Is
// matches both the kind sentinels (ErrInvalidToken, ErrSignatureMismatch,
// ErrTokenExpired, ErrArgument, ErrRange, ErrConfig) and the specific cause
// (for example ErrNegativeExpiration). Expiration is only checked after the
// signature verifies, so a forged token never reports ErrTokenExpired.
package token
