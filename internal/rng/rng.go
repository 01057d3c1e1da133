// internal/rng/rng.go
//
// Random sources for the game engine.
// Every source satisfies game.Random (IntN(n) in [0, n)).
//   - Crypto:   crypto/rand backed, used for normal play.
//   - Seeded:   math/rand/v2 PCG, reproducible sessions.
//   - Sequence: scripted values, deterministic tests.
//   - Locked:   serializes access to a non-thread-safe source.
package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source is the capability shared by all sources in this package.
type Source interface {
	IntN(n int) int
}

// Crypto draws from crypto/rand. The zero value is ready to use.
type Crypto struct{}

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
// A failing system random source panics: a predictable fallback would leak
// the secret.
func (Crypto) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("rng: crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

// NewSeeded returns a PCG generator seeded with seed.
// It is not safe for concurrent use; wrap it with Locked when shared.
func NewSeeded(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays Values in order, wrapping around at the end.
// Each value is reduced modulo n so scripted values stay in range.
type Sequence struct {
	Values []int
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{Values: values}
}

// IntN returns the next scripted value modulo n.
func (s *Sequence) IntN(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Locked guards a source with a mutex.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// IntN delegates to the wrapped source under the lock.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}
