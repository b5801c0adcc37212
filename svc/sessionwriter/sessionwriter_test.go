package sessionwriter_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stickyregion/pkg/config"
	"github.com/dmitrymomot/stickyregion/pkg/cookie"
	"github.com/dmitrymomot/stickyregion/svc/sessionwriter"
)

const (
	testSecret  = "this-is-a-very-long-secret-key-32-chars-long"
	otherSecret = "another-very-long-secret-key-with-32-chars"
)

var fixedNow = time.Date(2024, 5, 1, 14, 30, 45, 123_000_000, time.FixedZone("CEST", 2*60*60))

func testConfig() sessionwriter.Config {
	return sessionwriter.Config{
		Env:               "development",
		ServerPort:        8082,
		Region:            "EU",
		CookieDomain:      "example.com",
		DomainLink:        "https://example.com",
		CookieNameSession: "session",
		CookieNameRegion:  "region",
		CookieSecret:      testSecret,
		TTLSessionSeconds: 300,
		TTLRegionSeconds:  315360000,
	}
}

func newRouter(t *testing.T, cfg sessionwriter.Config) (http.Handler, *cookie.Manager) {
	t.Helper()
	m, err := cookie.NewFromConfig(cfg.CookieConfig())
	require.NoError(t, err)
	h := sessionwriter.NewHandler(cfg, m, sessionwriter.WithClock(func() time.Time { return fixedNow }))
	return h.Routes(cfg.Environment()), m
}

func do(t *testing.T, h http.Handler, method, path, cookieHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// setCookies indexes Set-Cookie headers by cookie name.
func setCookies(rec *httptest.ResponseRecorder) map[string]string {
	out := make(map[string]string)
	for _, line := range rec.Result().Header.Values("Set-Cookie") {
		name, _, _ := strings.Cut(line, "=")
		out[name] = line
	}
	return out
}

// pairs turns Set-Cookie headers into a Cookie request header.
func pairs(rec *httptest.ResponseRecorder) string {
	var parts []string
	for _, line := range rec.Result().Header.Values("Set-Cookie") {
		pair, _, _ := strings.Cut(line, ";")
		parts = append(parts, pair)
	}
	return strings.Join(parts, "; ")
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	h, m := newRouter(t, testConfig())
	rec := do(t, h, http.MethodPost, "/signin", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	headers := rec.Result().Header.Values("Set-Cookie")
	require.Len(t, headers, 2)
	cookies := setCookies(rec)
	header := pairs(rec)

	t.Run("session cookie is signed", func(t *testing.T) {
		t.Parallel()
		line := cookies["session"]
		require.NotEmpty(t, line)

		value, ok := m.Read(header, "session", true)
		require.True(t, ok)
		assert.Equal(t, "2024-05-01T12:30:45.123Z", value)

		parsed, err := time.Parse(time.RFC3339, value)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(fixedNow))

		assert.Contains(t, line, "Max-Age=300")
		assert.Contains(t, line, "HttpOnly")
		assert.Contains(t, line, "SameSite=Strict")
		assert.NotContains(t, line, "Domain=")
		assert.NotContains(t, line, "Secure")
	})

	t.Run("region cookie is plain", func(t *testing.T) {
		t.Parallel()
		line := cookies["region"]
		require.NotEmpty(t, line)

		assert.True(t, strings.HasPrefix(line, "region=EU;"), line)
		assert.Contains(t, line, "Domain=example.com")
		assert.Contains(t, line, "Max-Age=315360000")
		assert.NotContains(t, line, "HttpOnly")
		assert.NotContains(t, line, "Secure")
	})

	t.Run("other secret rejects session", func(t *testing.T) {
		t.Parallel()
		other, err := cookie.New([]string{otherSecret})
		require.NoError(t, err)
		_, ok := other.Read(header, "session", true)
		assert.False(t, ok)
	})
}

func TestSignInProductionSetsSecure(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Env = "production"
	h, _ := newRouter(t, cfg)

	cookies := setCookies(do(t, h, http.MethodPost, "/signin", ""))
	assert.Contains(t, cookies["session"], "; Secure")
	assert.Contains(t, cookies["region"], "; Secure")
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	h, _ := newRouter(t, testConfig())
	rec := do(t, h, http.MethodPost, "/signout", "session=x; region=EU")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := setCookies(rec)
	require.Len(t, cookies, 1)
	_, hasRegion := cookies["region"]
	assert.False(t, hasRegion)

	line := cookies["session"]
	assert.True(t, strings.HasPrefix(line, "session=;"), line)
	assert.Contains(t, line, "Max-Age=0")
}

func TestClearRegion(t *testing.T) {
	t.Parallel()

	h, _ := newRouter(t, testConfig())
	rec := do(t, h, http.MethodPost, "/nix", "session=x; region=EU")

	assert.Equal(t, http.StatusFound, rec.Code)

	cookies := setCookies(rec)
	require.Len(t, cookies, 1)
	_, hasSession := cookies["session"]
	assert.False(t, hasSession)

	line := cookies["region"]
	assert.True(t, strings.HasPrefix(line, "region=;"), line)
	assert.Contains(t, line, "Max-Age=0")
	assert.Contains(t, line, "Domain=example.com")
}

func TestIndex(t *testing.T) {
	t.Parallel()

	h, _ := newRouter(t, testConfig())

	t.Run("no cookies", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Result().Header.Values("Set-Cookie"))

		body := rec.Body.String()
		assert.Contains(t, body, "<title>Region EU</title>")
		assert.Equal(t, 2, strings.Count(body, `<span class="muted">none</span>`))
		assert.Contains(t, body, `<a href="https://example.com">`)
		assert.Contains(t, body, `action="/signin"`)
	})

	t.Run("after sign in", func(t *testing.T) {
		t.Parallel()
		signin := do(t, h, http.MethodPost, "/signin", "")
		rec := do(t, h, http.MethodGet, "/", pairs(signin))
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "<dd>2024-05-01T12:30:45.123Z</dd>")
		assert.Contains(t, body, "<dt>Region cookie</dt><dd>EU</dd>")
		assert.NotContains(t, body, `<span class="muted">none</span>`)
	})

	t.Run("tampered session is absent", func(t *testing.T) {
		t.Parallel()
		signin := do(t, h, http.MethodPost, "/signin", "")
		header := strings.Replace(pairs(signin), "2024", "2025", 1)
		rec := do(t, h, http.MethodGet, "/", header)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.NotContains(t, body, "2025")
		assert.Contains(t, body, "<dt>Session</dt><dd><span class=\"muted\">none</span></dd>")
	})

	t.Run("unsigned session is absent", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/", "session=2024-05-01T12:30:45.123Z")
		assert.Contains(t, rec.Body.String(), "<dt>Session</dt><dd><span class=\"muted\">none</span></dd>")
	})
}

func TestSecretRotation(t *testing.T) {
	t.Parallel()

	oldCfg := testConfig()
	oldRouter, _ := newRouter(t, oldCfg)
	signin := do(t, oldRouter, http.MethodPost, "/signin", "")

	rotated := testConfig()
	rotated.CookieSecret = otherSecret + "," + testSecret
	rotatedRouter, m := newRouter(t, rotated)

	value, ok := m.Read(pairs(signin), "session", true)
	require.True(t, ok)
	assert.Equal(t, "2024-05-01T12:30:45.123Z", value)

	rec := do(t, rotatedRouter, http.MethodGet, "/", pairs(signin))
	assert.Contains(t, rec.Body.String(), "2024-05-01T12:30:45.123Z")
}

func TestMethodsAndHealth(t *testing.T) {
	t.Parallel()

	h, _ := newRouter(t, testConfig())
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/signin", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
}

func TestDataStarSignIn(t *testing.T) {
	t.Parallel()

	h, _ := newRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	req.Header.Set("Accept", "text/event-stream")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Len(t, rec.Result().Header.Values("Set-Cookie"), 2)
	assert.Contains(t, rec.Body.String(), "window.location.href")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, testConfig().Validate())

	tests := []struct {
		name    string
		mutate  func(*sessionwriter.Config)
		wantErr error
	}{
		{"empty region", func(c *sessionwriter.Config) { c.Region = "" }, sessionwriter.ErrEmptyRegion},
		{"bad port", func(c *sessionwriter.Config) { c.ServerPort = 70000 }, sessionwriter.ErrInvalidPort},
		{"same names", func(c *sessionwriter.Config) { c.CookieNameRegion = "session" }, sessionwriter.ErrSameCookieName},
		{"empty name", func(c *sessionwriter.Config) { c.CookieNameSession = "" }, sessionwriter.ErrEmptyCookieName},
		{"zero ttl", func(c *sessionwriter.Config) { c.TTLSessionSeconds = 0 }, sessionwriter.ErrInvalidTTL},
		{"no secret", func(c *sessionwriter.Config) { c.CookieSecret = " , " }, cookie.ErrNoSecret},
		{"short secret", func(c *sessionwriter.Config) { c.CookieSecret = "short" }, cookie.ErrSecretTooShort},
		{"cookie domain with port", func(c *sessionwriter.Config) { c.CookieDomain = "localhost:8082" }, sessionwriter.ErrInvalidCookieDomain},
		{"cookie domain as url", func(c *sessionwriter.Config) { c.CookieDomain = "https://example.com" }, sessionwriter.ErrInvalidCookieDomain},
		{"default secret in production", func(c *sessionwriter.Config) {
			c.Env = "production"
			c.CookieSecret = sessionwriter.DefaultCookieSecret
		}, sessionwriter.ErrDefaultSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}

	dev := testConfig()
	dev.CookieSecret = sessionwriter.DefaultCookieSecret
	assert.NoError(t, dev.Validate())

	hostOnly := testConfig()
	hostOnly.CookieDomain = ""
	assert.NoError(t, hostOnly.Validate())
}

func TestSignInKeepsValidatedDomain(t *testing.T) {
	t.Parallel()

	for _, domain := range []string{"example.com", ".example.com", "localhost"} {
		cfg := testConfig()
		cfg.CookieDomain = domain
		require.NoError(t, cfg.Validate(), domain)

		h, _ := newRouter(t, cfg)
		cookies := setCookies(do(t, h, http.MethodPost, "/signin", ""))
		assert.Contains(t, cookies["region"], "; Domain=", domain)
	}
}

func TestCookieSettingsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CookiePath = "/app"
	cfg.CookieSameSite = "strict"
	h, m := newRouter(t, cfg)

	assert.Equal(t, http.SameSiteStrictMode, m.Defaults().SameSite)

	cookies := setCookies(do(t, h, http.MethodPost, "/signin", ""))
	assert.Contains(t, cookies["region"], "Path=/app")
	assert.Contains(t, cookies["region"], "SameSite=Strict")
}

func TestConfigLoad(t *testing.T) {
	t.Setenv("REGION", "US")
	t.Setenv("APP_ENV", "development")

	var cfg sessionwriter.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "US", cfg.Region)
	assert.Equal(t, 8082, cfg.ServerPort)
	assert.Equal(t, 300, cfg.TTLSessionSeconds)
	assert.Equal(t, 315360000, cfg.TTLRegionSeconds)
	assert.Equal(t, sessionwriter.DefaultCookieSecret, cfg.CookieSecret)
	assert.Equal(t, "/", cfg.CookiePath)
	assert.Empty(t, cfg.LogLevel)

	t.Setenv("COOKIE_SAME_SITE", "none")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "none", cfg.CookieConfig().SameSite)

	t.Setenv("COOKIE_DOMAIN", "localhost:8082")
	assert.ErrorIs(t, config.Load(&cfg), sessionwriter.ErrInvalidCookieDomain)
	t.Setenv("COOKIE_DOMAIN", "example.com")

	t.Setenv("APP_ENV", "production")
	assert.ErrorIs(t, config.Load(&cfg), sessionwriter.ErrDefaultSecret)
}
