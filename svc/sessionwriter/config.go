package sessionwriter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/stickyregion/pkg/cookie"
	"github.com/dmitrymomot/stickyregion/pkg/environment"
	"github.com/dmitrymomot/stickyregion/pkg/httpserver"
)

// DefaultCookieSecret is only good for local development. Config.Validate
// rejects it in production.
const DefaultCookieSecret = "local-development-cookie-secret-do-not-deploy"

var (
	ErrInvalidPort         = errors.New("sessionwriter.invalid_port")
	ErrEmptyCookieName     = errors.New("sessionwriter.empty_cookie_name")
	ErrSameCookieName      = errors.New("sessionwriter.same_cookie_name")
	ErrInvalidTTL          = errors.New("sessionwriter.invalid_ttl")
	ErrDefaultSecret       = errors.New("sessionwriter.default_secret_in_production")
	ErrEmptyRegion         = errors.New("sessionwriter.empty_region")
	ErrInvalidCookieDomain = errors.New("sessionwriter.invalid_cookie_domain")
)
	ErrEmptyCookieName  = errors.New("sessionwriter.empty_cookie_name")
	ErrSameCookieName   = errors.New("sessionwriter.same_cookie_name")
	ErrInvalidTTL       = errors.New("sessionwriter.invalid_ttl")
	ErrDefaultSecret    = errors.New("sessionwriter.default_secret_in_production")
	ErrEmptyRegion      = errors.New("sessionwriter.empty_region")
)

// Config is read once at startup.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"session-writer"`
	ServerPort  int    `env:"SERVER_PORT" envDefault:"8082"`
	LogLevel    string `env:"LOG_LEVEL"`

	// Region is the identity of this instance and the value of the region cookie.
	Region       string `env:"REGION,required"`
	CookieDomain string `env:"COOKIE_DOMAIN" envDefault:"example.com"`
	DomainLink   string `env:"DOMAIN_LINK" envDefault:"https://example.com"`

	CookieNameSession string `env:"COOKIE_NAME_SESSION" envDefault:"session"`
	CookieNameRegion  string `env:"COOKIE_NAME_REGION" envDefault:"region"`
	// CookieSecret may list several comma-separated secrets. The first one
	// signs; all of them verify.
	CookieSecret   string `env:"COOKIE_SECRET" envDefault:"local-development-cookie-secret-do-not-deploy"`
	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"lax"`

	TTLSessionSeconds int `env:"TTL_COOKIE_SESSION_SECONDS" envDefault:"300"`
	TTLRegionSeconds  int `env:"TTL_COOKIE_REGION_SECONDS" envDefault:"315360000"`

	// ClientIPHeaders lists proxy headers trusted for the client address, in order.
	ClientIPHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:","`

	HTTP httpserver.Config
}

func (c Config) Validate() error {
	var errs []error

	if c.ServerPort < 1 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, c.ServerPort))
	}
	if c.Region == "" {
		errs = append(errs, ErrEmptyRegion)
	}
	if c.CookieNameSession == "" || c.CookieNameRegion == "" {
		errs = append(errs, ErrEmptyCookieName)
	} else if c.CookieNameSession == c.CookieNameRegion {
		errs = append(errs, fmt.Errorf("%w: %q", ErrSameCookieName, c.CookieNameSession))
	}
	if c.CookieDomain != "" && !cookie.ValidDomain(c.CookieDomain) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCookieDomain, c.CookieDomain))
	}
	if c.TTLSessionSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: session %d", ErrInvalidTTL, c.TTLSessionSeconds))
	}
	if c.TTLRegionSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: region %d", ErrInvalidTTL, c.TTLRegionSeconds))
	}

	secrets := c.CookieConfig().SecretList()
	if len(secrets) == 0 {
		errs = append(errs, cookie.ErrNoSecret)
	}
	for i, s := range secrets {
		if len(s) < cookie.MinSecretLength {
			errs = append(errs, fmt.Errorf("%w: secret %d", cookie.ErrSecretTooShort, i))
		}
	}
	if c.Environment().IsProduction() && slices.Contains(secrets, DefaultCookieSecret) {
		errs = append(errs, ErrDefaultSecret)
	}

	return errors.Join(errs...)
}

// Environment returns the parsed APP_ENV value.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

// CookieConfig returns the cookie manager settings.
func (c Config) CookieConfig() cookie.Config {
	return cookie.Config{
		Secrets:  c.CookieSecret,
		Path:     c.CookiePath,
		SameSite: c.CookieSameSite,
	}
}
