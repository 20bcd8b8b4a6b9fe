package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lostoken/pkg/cookie"
	"github.com/dmitrymomot/lostoken/pkg/token"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.DefaultConfig()
	assert.Equal(t, "/", cfg.Path)
	assert.True(t, cfg.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite)
	assert.False(t, cfg.Secure)
	assert.Zero(t, cfg.MaxAge)
}

func TestConfig_FromEnvironment(t *testing.T) {
	t.Setenv("COOKIE_PATH", "/auth")
	t.Setenv("COOKIE_DOMAIN", "example.com")
	t.Setenv("COOKIE_MAX_AGE", "3600")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_HTTP_ONLY", "false")
	t.Setenv("COOKIE_SAME_SITE", "3")

	var cfg cookie.Config
	require.NoError(t, env.Parse(&cfg))

	m, err := cookie.NewFromConfig(newSigner(t), cfg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetTokenUntil(rec, "session", token.IntID(7), testExp))

	c := findCookie(t, rec, "session")
	assert.Equal(t, "/auth", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil signer", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.NewFromConfig(nil, cookie.DefaultConfig())
		assert.ErrorIs(t, err, cookie.ErrNilSigner)
	})

	t.Run("zero config keeps path and samesite defaults", func(t *testing.T) {
		t.Parallel()
		m, err := cookie.NewFromConfig(newSigner(t), cookie.Config{})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		require.NoError(t, m.SetTokenUntil(rec, "session", token.IntID(7), testExp))

		c := findCookie(t, rec, "session")
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.False(t, c.HttpOnly)
	})

	t.Run("extra options override config", func(t *testing.T) {
		t.Parallel()
		m, err := cookie.NewFromConfig(newSigner(t), cookie.DefaultConfig(), cookie.WithPath("/override"))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		require.NoError(t, m.SetTokenUntil(rec, "session", token.IntID(7), testExp))
		assert.Equal(t, "/override", findCookie(t, rec, "session").Path)
	})
}
