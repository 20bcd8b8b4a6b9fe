// Package lostoken issues compact signed tokens that can be stored in HTTP
// cookies without escaping.
//
// A token binds an identifier (a string or an arbitrary size non-negative
// integer) to an expiration time and authenticates both with a keyed hash
// over a salted payload. Every segment is written in base89, an alphabet made
// only of RFC 6265 cookie-octets.
//
// Packages:
//
//   - pkg/base89: integer, byte and text codec over the cookie-safe alphabet
//   - pkg/token: Signer, token issuing and validation, typed errors
//   - pkg/cookie: storing and reading tokens in net/http cookies
//   - pkg/secrets: random keys and salts, HKDF key derivation
//   - pkg/config: environment and .env loading
//   - pkg/logger: slog construction and attribute helpers
//
// Basic Usage:
//
//	signer, err := token.New([]byte(os.Getenv("LOS_KEY")), os.Getenv("LOS_SALT"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tok, _ := signer.Sign(token.StringID("user@example.com"))
//
//	claims, err := signer.Validate(tok)
//	switch {
//	case errors.Is(err, token.ErrTokenExpired):
//		// ask for a new login
//	case err != nil:
//		// reject
//	default:
//		fmt.Println(claims.ID, claims.ExpiresAt())
//	}
//
// Loading the signer from the environment:
//
//	var cfg token.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	signer, err := token.NewFromConfig(cfg, token.WithLogger(logger.New()))
//
// Storing tokens in cookies:
//
//	man, _ := cookie.New(signer, cookie.WithSecure(true))
//	_ = man.SetToken(w, "session", token.IntID(42))
//	claims, err := man.GetToken(r, "session")
package lostoken
