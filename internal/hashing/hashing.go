// Package hashing provides the password digest used for stored credentials.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the SHA-256 digest of s as a 64-character lowercase hex
// string. The digest is deterministic: equal inputs always produce equal
// output, which is what the stored-hash equality check relies on.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
