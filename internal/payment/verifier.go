package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Verifier checks gateway callback signatures locally against the shared
// key secret. The gateway signs `orderID|paymentID` with HMAC-SHA256 and
// hex-encodes the digest.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given gateway key secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify reports whether the supplied signature matches the expected
// HMAC-SHA256 digest of `orderID|paymentID`. The comparison is constant
// time.
func (v *Verifier) Verify(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign produces the signature the gateway would send for the given order
// and payment pair. Used by tests and sandbox tooling.
func (v *Verifier) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
