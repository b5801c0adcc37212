package cookie

import (
	"fmt"
	"net/http"
	"slices"
)

// MinSecretLength is the shortest secret New accepts.
const MinSecretLength = 32

// Manager writes and reads plain and signed cookies with shared defaults.
// It is immutable after New and safe for concurrent use.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a Manager. The first secret signs new cookies; every secret is
// accepted when verifying, so a rotated-out secret keeps existing cookies
// valid until they expire.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < MinSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), MinSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		secrets:  secrets,
		defaults: applyOptions(defaults, opts),
	}, nil
}

// Defaults returns a copy of the manager's default options.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Write serializes a cookie into a Set-Cookie header value, signing the value
// first when signed is true.
func (m *Manager) Write(name, value string, signed bool, opts ...Option) string {
	if signed {
		value = Sign(value, m.secrets[0])
	}
	return Serialize(name, value, applyOptions(m.defaults, opts))
}

// Read returns the named cookie from a Cookie header. With signed set, the
// value is returned only when its signature verifies; a tampered cookie is
// reported exactly like a missing one.
func (m *Manager) Read(header, name string, signed bool) (string, bool) {
	raw, ok := Lookup(header, name)
	if !ok {
		return "", false
	}
	if !signed {
		return raw, true
	}

	value, err := m.Verify(raw)
	if err != nil {
		return "", false
	}
	return value, true
}

// Verify checks a signed value against every configured secret.
func (m *Manager) Verify(signed string) (string, error) {
	err := ErrInvalidSignature
	for _, secret := range m.secrets {
		value, verr := Unsign(signed, secret)
		if verr == nil {
			return value, nil
		}
		err = verr
	}
	return "", err
}

// Set appends a plain cookie to the response.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	w.Header().Add("Set-Cookie", m.Write(name, value, false, opts...))
}

// SetSigned appends a signed cookie to the response.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) {
	w.Header().Add("Set-Cookie", m.Write(name, value, true, opts...))
}

// Get reads a plain cookie from the request.
func (m *Manager) Get(r *http.Request, name string) (string, bool) {
	return m.Read(RequestHeader(r), name, false)
}

// GetSigned reads and verifies a signed cookie from the request.
func (m *Manager) GetSigned(r *http.Request, name string) (string, bool) {
	return m.Read(RequestHeader(r), name, true)
}

// Delete expires the named cookie. Path and Domain must match the ones the
// cookie was set with, so pass the same WithDomain/WithPath overrides.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	opts = append(slices.Clone(opts), WithExpired())
	w.Header().Add("Set-Cookie", m.Write(name, "", false, opts...))
}
