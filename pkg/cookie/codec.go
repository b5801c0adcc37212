package cookie

import (
	"net/http"
	"net/url"
	"strings"
)

// Serialize renders a Set-Cookie header value for name=value with the given
// attributes. The value is percent-encoded so any string survives the round
// trip through Parse. Attributes are emitted in the order
// Path, Domain, Max-Age, HttpOnly, Secure, SameSite.
//
// Name validation is the caller's job: an invalid name yields "".
func Serialize(name, value string, opts Options) string {
	c := &http.Cookie{
		Name:     name,
		Value:    encodeValue(value),
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: opts.HttpOnly,
		SameSite: opts.SameSite,
	}
	return c.String()
}

// ValidDomain reports whether domain survives Serialize as a Domain
// attribute. net/http drops domains it rejects, such as "host:port" or a URL,
// which silently turns the cookie into a host-only one.
func ValidDomain(domain string) bool {
	if domain == "" {
		return false
	}
	return strings.Contains(Serialize("x", "", Options{Domain: domain}), "; Domain=")
}

// Parse decodes a Cookie request header into a name to value map.
// It never fails: pairs it cannot make sense of are skipped, and a value that
// is not valid percent-encoding is kept as is. When a name repeats, the first
// occurrence wins.
func Parse(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}

	for part := range strings.SplitSeq(header, ";") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := cookies[name]; exists {
			continue
		}

		cookies[name] = decodeValue(unquote(strings.TrimSpace(value)))
	}

	return cookies
}

// Lookup returns the value of the named cookie from a Cookie header.
// An empty value is reported as present.
func Lookup(header, name string) (string, bool) {
	if header == "" || name == "" {
		return "", false
	}
	value, ok := Parse(header)[name]
	return value, ok
}

// RequestHeader joins all Cookie headers of r. HTTP/2 clients may split
// cookies across several header fields.
func RequestHeader(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.Join(r.Header.Values("Cookie"), "; ")
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func decodeValue(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

const upperhex = "0123456789ABCDEF"

// encodeValue escapes everything except ASCII alphanumerics and -_.!~*'().
// The output only contains bytes net/http accepts in a cookie value.
func encodeValue(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnescaped(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnescaped(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
