package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashKey creates a short stable hash of a canonical cache key string.
// Used where a compact identifier is preferable to the full key, e.g. in
// log fields.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:16]
}
