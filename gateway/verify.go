package gateway

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// VerifyInteraction reports whether sigHex is a valid Ed25519 signature over
// timestamp||body under publicKey. Discord signs the concatenation of the
// timestamp header and the raw request body.
//
// This gates everything else the gateway does, so every failure mode —
// missing headers, malformed hex, wrong key size — degrades to false, never
// to a panic.
func VerifyInteraction(publicKey ed25519.PublicKey, sigHex, timestamp string, body []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	if sigHex == "" || timestamp == "" {
		return false
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}

	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return ed25519.Verify(publicKey, msg, sig)
}

// ParsePublicKey decodes the hex-encoded Ed25519 public key Discord shows in
// the application's developer portal.
func ParsePublicKey(hexKey string) (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length: %d", len(key))
	}
	return ed25519.PublicKey(key), nil
}
