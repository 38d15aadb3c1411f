// Package daily derives the deterministic "puzzle of the day" seed.
//
// Everyone asking on the same UTC date with the same salt gets the same
// seed, and therefore the same source word and scramble from an engine
// built over the same dictionary.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns HMAC-SHA256(salt, DateKey(date)) folded into an int64.
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty of entropy for a math/rand seed
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

// Rand returns a fresh generator seeded with Seed(date, salt).
func Rand(date time.Time, salt string) *rand.Rand {
	return rand.New(rand.NewSource(Seed(date, salt)))
}
