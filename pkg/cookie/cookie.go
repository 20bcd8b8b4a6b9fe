package cookie

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/lostoken/pkg/logger"
	"github.com/dmitrymomot/lostoken/pkg/token"
)

// maxExpires is the last instant an HTTP date with a four-digit year can
// express. Later token expirations are capped to it on the cookie.
var maxExpires = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// Manager stores signed tokens in cookies.
type Manager struct {
	signer   *token.Signer
	defaults Options
	log      *slog.Logger
}

// New creates a Manager. Defaults are Path "/", HttpOnly and SameSite=Lax.
func New(signer *token.Signer, opts ...Option) (*Manager, error) {
	if signer == nil {
		return nil, ErrNilSigner
	}

	defaults := applyOptions(Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, opts)

	return &Manager{
		signer:   signer,
		defaults: defaults,
		log:      logger.OrDiscard(defaults.logger).With(logger.Component("cookie")),
	}, nil
}

// Signer returns the signer backing the manager.
func (m *Manager) Signer() *token.Signer {
	return m.signer
}

// SetToken signs id with the signer's default TTL and stores it under name.
func (m *Manager) SetToken(w http.ResponseWriter, name string, id token.ID, opts ...Option) error {
	expires := m.signer.Now().Add(m.signer.DefaultTTL()).Unix()
	return m.SetTokenUntil(w, name, id, expires, opts...)
}

// SetTokenUntil signs id with an explicit expiration in Unix seconds and
// stores it under name. The cookie expires together with the token.
func (m *Manager) SetTokenUntil(w http.ResponseWriter, name string, id token.ID, expires int64, opts ...Option) error {
	tok, err := m.signer.SignUntil(id, expires)
	if err != nil {
		return err
	}
	if !IsCookieSafe(tok) {
		return fmt.Errorf("%w: %q", ErrUnsafeValue, name)
	}

	options := applyOptions(m.defaults, opts)

	expiresAt := token.ExpirationTime(expires)
	if expiresAt.After(maxExpires) {
		expiresAt = maxExpires
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    tok,
		Path:     options.Path,
		Domain:   options.Domain,
		Expires:  expiresAt,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

// GetToken reads the cookie called name and validates its token.
// It returns ErrCookieNotFound when the cookie is absent; validation
// failures are the signer's errors and can be classified with token.KindOf.
func (m *Manager) GetToken(r *http.Request, name string, opts ...token.ValidateOption) (token.Claims, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return token.Claims{}, ErrCookieNotFound
		}
		return token.Claims{}, err
	}

	claims, err := m.signer.Validate(c.Value, opts...)
	if err != nil {
		m.log.DebugContext(r.Context(), "rejected token cookie", logger.Cookie(name), logger.Error(err))
		return token.Claims{}, err
	}
	return claims, nil
}

// Delete expires the cookie called name using the manager defaults.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// IsCookieSafe reports whether v consists only of RFC 6265 cookie-octets:
// no controls, whitespace, DQUOTE, comma, semicolon or backslash.
func IsCookieSafe(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c < 0x21 || c > 0x7e || c == '"' || c == ',' || c == ';' || c == '\\' {
			return false
		}
	}
	return true
}
