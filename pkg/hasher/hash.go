package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// SumBytes returns the hex SHA-256 digest of b. Used as the dataset
// fingerprint and the page ETag.
func SumBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}
