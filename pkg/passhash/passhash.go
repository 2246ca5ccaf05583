// Package passhash implements the stored password-credential scheme: a
// per-user random salt and a single-pass sha256 hex digest over
// "salt:password". The digest format is part of the persisted data contract,
// so it must stay stable across releases.
package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const saltBytes = 16

// NewSalt returns a fresh random salt, hex-encoded.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash derives the hex digest for a password under the given salt.
// Deterministic: same inputs, same digest.
func Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + ":" + password))
	return hex.EncodeToString(sum[:])
}

// Verify re-derives the digest from the presented password and compares it
// against the stored one in constant time.
func Verify(password, salt, storedHash string) bool {
	derived := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(storedHash)) == 1
}
