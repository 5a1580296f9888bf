package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

var ErrInvalidBound = errors.New("random bound must be positive")

// RandomSource returns uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. Safe for concurrent use.
type CryptoSource struct{}

// Intn returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading crypto/rand: %w", err)
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic ChaCha8 stream. The same seed always yields
// the same sequence, which is what tests and GENERATOR_SEED rely on.
type SeededSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeededSource expands a uint64 seed into a ChaCha8 key.
func NewSeededSource(seed uint64) *SeededSource {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return NewSeededSourceFromKey(key)
}

// NewSeededSourceFromKey uses the 32 bytes as the ChaCha8 seed directly.
func NewSeededSourceFromKey(key [32]byte) *SeededSource {
	return &SeededSource{rng: mathrand.New(mathrand.NewChaCha8(key))}
}

// Intn returns the next value in [0, n) from the seeded stream.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}
