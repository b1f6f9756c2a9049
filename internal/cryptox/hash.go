// Package cryptox implements password hashing for stored credentials.
//
// A stored hash is hex(SHA1(pepper ∥ password ∥ salt)): the pepper is a
// process-wide secret shared by every hash, the salt is drawn fresh per user
// and stored next to the hash.
package cryptox

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
)

// saltAlphabet is the character set salts are drawn from.
const saltAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrs" +
	"tuvwxyz0123456789<>?:@{!$%^&*()_+£$"

// SaltLength is the number of characters in a generated salt.
const SaltLength = 6

// Hasher computes storable password hashes with a fixed secret pepper.
type Hasher struct {
	pepper string
}

func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Hash returns the lowercase hex digest of pepper ∥ password ∥ salt.
// Deterministic for identical inputs, which verification relies on.
func (h *Hasher) Hash(password, salt string) string {
	sum := sha1.Sum([]byte(h.pepper + password + salt))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the hash for the supplied plaintext and compares it to
// the stored one in constant time.
func (h *Hasher) Verify(password, salt, storedHash string) bool {
	candidate := h.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}

// GenerateSalt draws a fresh SaltLength-character salt from saltAlphabet
// using crypto/rand. It panics if the entropy source is unavailable; that is
// fatal at startup, never a per-request condition.
func GenerateSalt() string {
	alphabet := []rune(saltAlphabet)
	max := big.NewInt(int64(len(alphabet)))

	salt := make([]rune, SaltLength)
	for i := range salt {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		salt[i] = alphabet[n.Int64()]
	}
	return string(salt)
}
