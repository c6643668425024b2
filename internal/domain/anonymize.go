package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// UserHashLength is the fixed length of a pseudonymous id. Existing history
// files depend on this exact truncation; changing it breaks compatibility.
const UserHashLength = 12

// AnonymizeID derives the stable pseudonymous id for a raw name. Input is
// trimmed and lowercased first so case and whitespace variants of the same
// name collide to the same id. Deterministic and pure.
func AnonymizeID(rawName string) string {
	normalized := strings.ToLower(strings.TrimSpace(rawName))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:UserHashLength]
}
