package cookie

import "strings"

// Config holds cookie manager settings. Services map their own environment
// variables onto it.
type Config struct {
	// Secrets is a comma-separated list; the first entry signs, all of them verify.
	Secrets string
	// Path and SameSite override the manager defaults when non-empty.
	Path     string
	SameSite string
}

// SecretList splits the secrets string into a slice, dropping blanks.
func (c Config) SecretList() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// NewFromConfig creates a new Manager from the provided Config.
// Only non-zero values from the config are applied; opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 2+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.SameSite != "" {
		configOpts = append(configOpts, WithSameSite(ParseSameSite(cfg.SameSite)))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.SecretList(), configOpts...)
}
