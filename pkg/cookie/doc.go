// Package cookie implements the cookie wire format and signed cookies shared
// by the region router and the session writer.
//
// It has two layers.
//
// The codec layer is a set of pure functions over header strings:
//
//   - Serialize renders a Set-Cookie value with Path, Domain, Max-Age,
//     HttpOnly, Secure and SameSite attributes.
//   - Parse turns a Cookie request header into a map and never fails on
//     malformed client input.
//   - Lookup reads a single cookie from a header.
//   - Sign and Unsign add and verify an HMAC-SHA256 signature using the
//     "<value>.<signature>" layout.
//
// The Manager layer holds the signing secrets and default attributes:
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")},
//	    cookie.WithSecure(true),
//	)
//	if err != nil { log.Fatal(err) }
//
//	man.SetSigned(w, "session", time.Now().UTC().Format(time.RFC3339),
//	    cookie.WithMaxAge(300),
//	    cookie.WithSameSite(http.SameSiteStrictMode),
//	)
//
//	value, ok := man.GetSigned(r, "session")
//
// # Failure semantics
//
// Reads never surface errors. A cookie whose signature does not verify under
// any configured secret is reported as absent, so a forged cookie and no
// cookie at all lead to the same behaviour. Unsign and Verify do return
// ErrInvalidFormat or ErrInvalidSignature for callers that need to tell them
// apart, for example in logs.
//
// # Key rotation
//
// New accepts several secrets. The first signs, all of them verify. Each
// secret must be at least 32 bytes long.
package cookie
