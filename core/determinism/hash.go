// Package determinism provides content hashes used to identify rate cards
// and quote requests. Equal content always yields an equal hash.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// HashPairs hashes name=value lines in the order given. Callers own the
// order; it must not depend on map iteration.
func HashPairs(pairs [][2]string) ContentHash {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(p[1])
		b.WriteByte('\n')
	}
	return ComputeHash([]byte(b.String()))
}

// HashJSON hashes the JSON encoding of v. Struct fields encode in
// declaration order, so the hash is stable for a given type.
func HashJSON(v interface{}) (ContentHash, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return ContentHash{}, err
	}
	return ComputeHash(data), nil
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first n hex digits
func (h ContentHash) Short(n int) string {
	s := h.Hex()
	if n <= 0 || n > len(s) {
		return s
	}
	return s[:n]
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Short(16) + "..."
}
