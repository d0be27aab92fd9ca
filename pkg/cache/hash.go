package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key builds the cache key for an artifact of the given kind rendered from
// source. The key format is kind:sha256(source).
func Key(kind string, source []byte) string {
	return kind + ":" + Hash(source)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
