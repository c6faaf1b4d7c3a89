package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "kind:<hash>", the hash covering every part as JSON.
func hashKey(kind string, parts ...any) string {
	raw, _ := json.Marshal(parts)
	return kind + ":" + Hash(raw)
}
