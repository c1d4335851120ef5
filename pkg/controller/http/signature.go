package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signaturePrefix is the required prefix of the X-Hub-Signature-256 header.
const signaturePrefix = "sha256="

// extractSignature parses an X-Hub-Signature-256 header value into the raw
// HMAC digest. A missing header, wrong prefix, and non-hex suffix all
// return ok=false; callers must treat them identically to a wrong signature
// so that external senders cannot distinguish the cases.
func extractSignature(header string) ([]byte, bool) {
	if !strings.HasPrefix(header, signaturePrefix) {
		return nil, false
	}

	digest, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return nil, false
	}

	return digest, true
}

// verifySignature reports whether signature is a valid HMAC-SHA256 of
// payload under secret. The comparison is constant-time. Pure function:
// verification failure is false, never an error.
func verifySignature(payload, secret, signature []byte) bool {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hmac.Equal(mac.Sum(nil), signature)
}
