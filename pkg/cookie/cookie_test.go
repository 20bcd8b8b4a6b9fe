package cookie_test

import (
	"bytes"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lostoken/pkg/base89"
	"github.com/dmitrymomot/lostoken/pkg/cookie"
	"github.com/dmitrymomot/lostoken/pkg/logger"
	"github.com/dmitrymomot/lostoken/pkg/token"
)

const (
	testKey  = "gKXe634fb4YeMFgXngWIf6OmZkxsyw2v"
	testSalt = "CchXL7iCL6yUw0U8tnateu2YvSK3PUE0"
	testExp  = int64(1700000000)
)

var testNow = time.Unix(testExp-3600, 0)

func newSigner(t *testing.T, opts ...token.Option) *token.Signer {
	t.Helper()
	opts = append([]token.Option{token.WithClock(func() time.Time { return testNow })}, opts...)
	s, err := token.New([]byte(testKey), testSalt, opts...)
	require.NoError(t, err)
	return s
}

func newManager(t *testing.T, opts ...cookie.Option) *cookie.Manager {
	t.Helper()
	m, err := cookie.New(newSigner(t), opts...)
	require.NoError(t, err)
	return m
}

// roundTrip copies the cookies set on rec into a fresh request.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return req
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil signer", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNilSigner)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)
		rec := httptest.NewRecorder()
		require.NoError(t, m.SetToken(rec, "session", token.IntID(1)))

		c := findCookie(t, rec, "session")
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.False(t, c.Secure)
		assert.Empty(t, c.Domain)
	})

	t.Run("exposes signer", func(t *testing.T) {
		t.Parallel()
		s := newSigner(t)
		m, err := cookie.New(s)
		require.NoError(t, err)
		assert.Same(t, s, m.Signer())
	})
}

func TestManager_SetTokenUntil(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	require.NoError(t, m.SetTokenUntil(rec, "session", token.StringID("LosToken"), testExp))

	c := findCookie(t, rec, "session")
	assert.Equal(t, "0P$Kjo~lEP&.bIog1.CGq2~y&lmC}(Aehm7p!l}YO8/3*NmRv1m>p&EdcV", c.Value)
	assert.True(t, c.Expires.Equal(time.Unix(testExp, 0)), "expires = %v", c.Expires)
	assert.Zero(t, c.MaxAge)
}

func TestManager_SetTokenUntil_FarFuture(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	for _, exp := range []int64{math.MaxInt64, math.MaxInt64 - 1000, 253402300800} {
		rec := httptest.NewRecorder()
		require.NoError(t, m.SetTokenUntil(rec, "session", token.IntID(1), exp))

		c := findCookie(t, rec, "session")
		assert.Equal(t, 9999, c.Expires.Year(), "exp %d", exp)

		claims, err := m.GetToken(roundTrip(rec), "session")
		require.NoError(t, err, "exp %d", exp)
		assert.Equal(t, exp, claims.Expires)
	}
}

func TestManager_SetToken(t *testing.T) {
	t.Parallel()

	s := newSigner(t, token.WithDefaultTTL(2*time.Hour))
	m, err := cookie.New(s)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetToken(rec, "session", token.IntID(123456)))

	c := findCookie(t, rec, "session")
	want := testNow.Add(2 * time.Hour)
	assert.True(t, c.Expires.Equal(want), "expires = %v", c.Expires)

	claims, err := m.GetToken(roundTrip(rec), "session")
	require.NoError(t, err)
	assert.True(t, token.IntID(123456).Equal(claims.ID))
	assert.Equal(t, want.Unix(), claims.Expires)
}

func TestManager_SetToken_InvalidID(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()

	err := m.SetToken(rec, "session", token.ID{})
	require.ErrorIs(t, err, token.ErrArgument)
	assert.Empty(t, rec.Result().Cookies())
}

func TestManager_PerCallOptions(t *testing.T) {
	t.Parallel()

	m := newManager(t, cookie.WithDomain("example.com"))
	rec := httptest.NewRecorder()
	err := m.SetTokenUntil(rec, "session", token.IntID(1), testExp,
		cookie.WithPath("/app"),
		cookie.WithSecure(true),
		cookie.WithMaxAge(600),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithHTTPOnly(false),
	)
	require.NoError(t, err)

	c := findCookie(t, rec, "session")
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.True(t, c.Secure)
	assert.Equal(t, 600, c.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.False(t, c.HttpOnly)

	rec = httptest.NewRecorder()
	require.NoError(t, m.SetTokenUntil(rec, "other", token.IntID(1), testExp))
	c = findCookie(t, rec, "other")
	assert.Equal(t, "/", c.Path, "per-call options must not change defaults")
	assert.False(t, c.Secure)
}

func TestManager_GetToken(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	valid := httptest.NewRecorder()
	require.NoError(t, m.SetTokenUntil(valid, "session", token.StringID("user@example.com"), testExp))
	validValue := findCookie(t, valid, "session").Value

	expired := httptest.NewRecorder()
	require.NoError(t, m.SetTokenUntil(expired, "session", token.StringID("user@example.com"), testNow.Unix()-1))
	expiredValue := findCookie(t, expired, "session").Value

	tampered := []byte(validValue)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	tests := []struct {
		name    string
		value   string
		set     bool
		opts    []token.ValidateOption
		wantErr error
	}{
		{name: "valid", value: validValue, set: true},
		{name: "missing", wantErr: cookie.ErrCookieNotFound},
		{name: "empty value", value: "", set: true, wantErr: token.ErrInvalidToken},
		{name: "garbage", value: "not-a-token", set: true, wantErr: token.ErrInvalidToken},
		{name: "tampered", value: string(tampered), set: true, wantErr: token.ErrSignatureMismatch},
		{name: "expired", value: expiredValue, set: true, wantErr: token.ErrTokenExpired},
		{name: "expired ignored", value: expiredValue, set: true, opts: []token.ValidateOption{token.IgnoreExpiration()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.set {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.value})
			}

			claims, err := m.GetToken(req, "session", tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, claims.ID.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user@example.com", claims.ID.String())
		})
	}
}

func TestManager_GetToken_LogsRejection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	m, err := cookie.New(newSigner(t), cookie.WithLogger(log))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "bogus"})

	_, err = m.GetToken(req, "session")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"cookie":"session"`)
	assert.Contains(t, buf.String(), `"component":"cookie"`)
	assert.NotContains(t, buf.String(), "bogus")
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := newManager(t, cookie.WithPath("/app"), cookie.WithSecure(true))
	rec := httptest.NewRecorder()
	m.Delete(rec, "session")

	c := findCookie(t, rec, "session")
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "/app", c.Path)
	assert.True(t, c.Secure)
}

func TestIsCookieSafe(t *testing.T) {
	t.Parallel()

	assert.True(t, cookie.IsCookieSafe(""))
	assert.True(t, cookie.IsCookieSafe(base89.Alphabet))
	assert.True(t, cookie.IsCookieSafe("1P0N.bIog1.GXb3HP4bV+S>!9F2g0=s8hJaDE^2!9?jK}%?jKSo"))

	for _, v := range []string{"a b", `a"b`, "a,b", "a;b", `a\b`, "a\tb", "a\x7fb", "ä"} {
		assert.False(t, cookie.IsCookieSafe(v), "%q", v)
	}
}

func TestIsCookieSafe_Tokens(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	ids := []token.ID{
		token.StringID("LosToken"),
		token.StringID("user@example.com"),
		token.StringID("🔥 unicode 💯"),
		token.IntID(0),
		token.Uint64ID(^uint64(0)),
	}
	for _, id := range ids {
		tok, err := s.SignUntil(id, testExp)
		require.NoError(t, err)
		assert.True(t, cookie.IsCookieSafe(tok), tok)
	}
}
