package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

const signatureSeparator = "."

// Sign appends an HMAC-SHA256 signature of value to it: "<value>.<signature>".
// The signature is unpadded standard base64, the format produced by the
// cookie-signature package, so cookies stay readable across implementations
// sharing the secret.
func Sign(value, secret string) string {
	return value + signatureSeparator + signature(value, secret)
}

// Unsign verifies a string produced by Sign and returns the original value.
// Anything that does not carry a valid signature for secret, whether it is
// truncated, re-encoded or signed with another secret, yields an error.
func Unsign(signed, secret string) (string, error) {
	idx := strings.LastIndex(signed, signatureSeparator)
	if idx < 0 {
		return "", ErrInvalidFormat
	}

	value := signed[:idx]
	expected := value + signatureSeparator + signature(value, secret)

	if !hmac.Equal([]byte(signed), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return value, nil
}

func signature(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}
