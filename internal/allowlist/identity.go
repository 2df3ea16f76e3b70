package allowlist

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// identityPrefix may precede a hash in the allowlist file.
const identityPrefix = "sha256:"

// Identity returns the lowercase hex SHA-256 digest of a finding's raw matched
// text. The value is identical on every run and every machine.
func Identity(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// NormalizeHash trims whitespace, lower-cases, and drops an optional "sha256:" prefix.
func NormalizeHash(hash string) string {
	h := strings.ToLower(strings.TrimSpace(hash))
	return strings.TrimPrefix(h, identityPrefix)
}
