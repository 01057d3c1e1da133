package rng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	mrand "math/rand/v2"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailySeed derives a seed from HMAC(salt, YYYY-MM-DD).
func DailySeed(t time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for a PCG seed
	return binary.BigEndian.Uint64(sum[:8])
}

// Daily returns a generator that yields the same sequence for every caller
// on the same UTC day with the same salt.
func Daily(t time.Time, salt string) *mrand.Rand {
	return NewSeeded(DailySeed(t, salt))
}
