package notification

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body.
const SignatureHeader = "X-Ebay-Signature"

// Sign returns the hex HMAC-SHA256 of body keyed by secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature is the HMAC-SHA256 of body
// under secret. An empty secret or signature never verifies.
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(Sign(secret, body))
	return hmac.Equal(got, want)
}

// ChallengeResponse answers the endpoint verification handshake: the hex
// SHA-256 of challengeCode, verificationToken and endpointURL concatenated
// in that order.
func ChallengeResponse(challengeCode, verificationToken, endpointURL string) string {
	h := sha256.New()
	h.Write([]byte(challengeCode))
	h.Write([]byte(verificationToken))
	h.Write([]byte(endpointURL))
	return hex.EncodeToString(h.Sum(nil))
}
