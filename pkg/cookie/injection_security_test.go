package cookie_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stickyregion/pkg/cookie"
)

func TestSerializeValueInjection(t *testing.T) {
	t.Parallel()

	attacks := []string{
		"US; Domain=evil.com",
		"US; Max-Age=999999999",
		"US\r\nSet-Cookie: admin=1",
		"US\nLocation: https://evil.com",
		"US, other=1",
	}

	for _, attack := range attacks {
		got := cookie.Serialize("region", attack, cookie.Options{Path: "/"})
		require.NotEmpty(t, got)

		assert.NotContains(t, got, "\r")
		assert.NotContains(t, got, "\n")
		assert.Equal(t, 1, strings.Count(got, ";"), "only the Path attribute may add a separator: %q", got)

		back, ok := cookie.Lookup(strings.SplitN(got, ";", 2)[0], "region")
		require.True(t, ok)
		assert.Equal(t, attack, back)
	}
}

func TestSerializeInvalidName(t *testing.T) {
	t.Parallel()
	assert.Empty(t, cookie.Serialize("bad name", "v", cookie.Options{}))
	assert.Empty(t, cookie.Serialize("", "v", cookie.Options{}))
}

func TestParseHostileHeaders(t *testing.T) {
	t.Parallel()

	headers := []string{
		strings.Repeat(";", 10000),
		strings.Repeat("=", 10000),
		strings.Repeat("a=b;", 5000),
		"\x00\x01\x02=\xff\xfe",
		"region=%",
		"region=%%%%",
		`region="`,
		`region=""`,
		"region=US\r\nX-Injected: 1",
	}

	for _, h := range headers {
		assert.NotPanics(t, func() {
			_ = cookie.Parse(h)
			_, _ = cookie.Lookup(h, "region")
		})
	}

	v, ok := cookie.Lookup(`region=""`, "region")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func FuzzParse(f *testing.F) {
	f.Add("region=US; session=abc.def")
	f.Add(`a="b"; c=%41; =; ;`)
	f.Add("\x00=\x00")
	f.Fuzz(func(t *testing.T, header string) {
		cookies := cookie.Parse(header)
		for name := range cookies {
			if name == "" || strings.TrimSpace(name) != name {
				t.Fatalf("unexpected name %q", name)
			}
		}
	})
}

func FuzzUnsign(f *testing.F) {
	f.Add("value.signature")
	f.Add(cookie.Sign("2026-10-18T12:00:00.000Z", testSecret))
	f.Add("")
	f.Fuzz(func(t *testing.T, signed string) {
		v, err := cookie.Unsign(signed, testSecret)
		if err == nil && cookie.Sign(v, testSecret) != signed {
			t.Fatalf("accepted %q without a matching signature", signed)
		}
	})
}
