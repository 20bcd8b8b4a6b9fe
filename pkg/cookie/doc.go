// Package cookie stores signed tokens from pkg/token in HTTP cookies.
//
// Token segments are base89, and every base89 character is an RFC 6265
// cookie-octet, so the token is used as the cookie value verbatim. The cookie
// Expires attribute always matches the token expiration.
//
// # Usage
//
//	signer, _ := token.New(key, salt)
//	man, err := cookie.New(signer, cookie.WithSecure(true))
//	if err != nil { log.Fatal(err) }
//
//	http.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
//	    _ = man.SetToken(w, "session", token.IntID(42))
//	})
//
//	http.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
//	    claims, err := man.GetToken(r, "session")
//	    if errors.Is(err, token.ErrTokenExpired) {
//	        man.Delete(w, "session")
//	    }
//	    _ = claims
//	})
//
// # Configuration
//
// Config carries the cookie attributes and can be loaded with pkg/config:
//
//	var cfg cookie.Config
//	_ = config.Load(&cfg)
//	man, _ := cookie.NewFromConfig(signer, cfg)
//
// # Error Handling
//
// ErrCookieNotFound is returned when the cookie is missing. Any other failure
// from GetToken is a *token.Error.
package cookie
