package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashIdentifier returns a short SHA-256 fingerprint of a user identifier
// such as an email address, safe to put in logs. Case and surrounding
// whitespace do not change the result.
func HashIdentifier(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:16]
}
