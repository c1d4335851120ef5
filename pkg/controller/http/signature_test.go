package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

func TestVerifySignature_KnownVector(t *testing.T) {
	// Test vector from the GitHub webhook documentation
	secret := []byte("It's a Secret to Everybody")
	payload := []byte("Hello, World!")

	signature, err := hex.DecodeString("757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17")
	if err != nil {
		t.Fatalf("failed to decode signature: %v", err)
	}

	if !verifySignature(payload, secret, signature) {
		t.Error("verifySignature() = false, want true")
	}
}

func TestVerifySignature_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	payload := []byte(`{"action":"completed"}`)

	if !verifySignature(payload, secret, sign(secret, payload)) {
		t.Error("verifySignature() = false for self-computed signature")
	}

	if verifySignature(payload, secret, []byte("not a signature")) {
		t.Error("verifySignature() = true for garbage signature")
	}
}

func TestVerifySignature_TamperedPayload(t *testing.T) {
	secret := []byte("test-secret")
	payload := []byte(`{"action":"completed"}`)
	signature := sign(secret, payload)

	for i := range payload {
		tampered := make([]byte, len(payload))
		copy(tampered, payload)
		tampered[i] ^= 0x01

		if verifySignature(tampered, secret, signature) {
			t.Errorf("verifySignature() = true for payload tampered at byte %d", i)
		}
	}
}

func TestExtractSignature(t *testing.T) {
	digest := hex.EncodeToString(sign([]byte("s"), []byte("p")))

	tests := []struct {
		name   string
		header string
		wantOK bool
	}{
		{
			name:   "valid header",
			header: "sha256=" + digest,
			wantOK: true,
		},
		{
			name:   "missing header",
			header: "",
			wantOK: false,
		},
		{
			name:   "wrong prefix",
			header: "sha1=" + digest,
			wantOK: false,
		},
		{
			name:   "no prefix",
			header: digest,
			wantOK: false,
		},
		{
			name:   "non-hex suffix",
			header: "sha256=not-hex-at-all",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := extractSignature(tt.header)
			if ok != tt.wantOK {
				t.Errorf("extractSignature() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}
