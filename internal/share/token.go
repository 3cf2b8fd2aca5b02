package share

import (
	"crypto/rand"
	"encoding/hex"
)

// NewToken returns a 128-bit random identifier, hex-encoded. Collisions
// are treated as negligible; there is no uniqueness retry.
func NewToken() (string, error) {
	buf := make([]byte, 16)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
