package hash

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// SHA3 produces a hex-encoded SHA3-512 digest of a password.
// The digest is deterministic, so equal passwords always hash equally.
type SHA3 struct{}

func (SHA3) Hash(password string) string {
	return HashPassword(password)
}

func HashPassword(password string) string {
	sum := sha3.Sum512([]byte(password))
	return hex.EncodeToString(sum[:])
}
