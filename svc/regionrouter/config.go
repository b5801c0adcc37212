package regionrouter

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/stickyregion/pkg/environment"
	"github.com/dmitrymomot/stickyregion/pkg/httpserver"
)

var (
	ErrInvalidPort       = errors.New("regionrouter.invalid_port")
	ErrEmptyCookieName   = errors.New("regionrouter.empty_cookie_name")
	ErrNoDirectorySource = errors.New("regionrouter.no_directory_source")
)

// Config is read once at startup.
type Config struct {
	Env              string `env:"APP_ENV" envDefault:"development"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"region-router"`
	ServerPort       int    `env:"SERVER_PORT" envDefault:"8081"`
	LogLevel         string `env:"LOG_LEVEL"`
	CookieNameRegion string `env:"COOKIE_NAME_REGION" envDefault:"region"`
	Regions          string `env:"REGIONS" envDefault:"US#https://us.example.com,EU#https://eu.example.com"`
	// RegionsFile points to a YAML directory and wins over Regions when set.
	RegionsFile string `env:"REGIONS_FILE"`

	// ClientIPHeaders lists proxy headers trusted for the client address, in order.
	ClientIPHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:","`

	HTTP httpserver.Config
}

func (c Config) Validate() error {
	var errs []error
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, c.ServerPort))
	}
	if c.CookieNameRegion == "" {
		errs = append(errs, ErrEmptyCookieName)
	}
	if c.Regions == "" && c.RegionsFile == "" {
		errs = append(errs, ErrNoDirectorySource)
	}
	return errors.Join(errs...)
}

// Environment returns the parsed APP_ENV value.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}
