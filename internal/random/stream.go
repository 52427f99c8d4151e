// Package random provides the single deterministic stream threaded through a
// generation run, plus keyed sub-streams for lookups that must not depend on
// the order in which they are made.
package random

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Stream is not safe for concurrent use. Each run owns its own.
type Stream struct {
	rng   *rand.Rand
	draws uint64
}

// NewStream seeds a PCG generator from the SHA-256 digest of seed.
func NewStream(seed string) *Stream {
	sum := sha256.Sum256([]byte(seed))
	return newPCG(binary.BigEndian.Uint64(sum[0:8]), binary.BigEndian.Uint64(sum[8:16]))
}

// Derive builds an independent stream from a key and a list of integers,
// typically a galaxy key, a level and a cell index.
func Derive(key uint64, parts ...int64) *Stream {
	buf := make([]byte, 8*(len(parts)+1))
	binary.BigEndian.PutUint64(buf, key)
	for i, part := range parts {
		binary.BigEndian.PutUint64(buf[8*(i+1):], uint64(part))
	}
	sum := sha256.Sum256(buf)
	return newPCG(binary.BigEndian.Uint64(sum[0:8]), binary.BigEndian.Uint64(sum[8:16]))
}

func newPCG(seed1, seed2 uint64) *Stream {
	return &Stream{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Draws reports how many values have been taken from the stream.
func (s *Stream) Draws() uint64 {
	return s.draws
}

func (s *Stream) Uint64() uint64 {
	s.draws++
	return s.rng.Uint64()
}

// Float64 returns a value in [0, 1).
func (s *Stream) Float64() float64 {
	s.draws++
	return s.rng.Float64()
}

// IntN returns a value in [0, n). n must be positive.
func (s *Stream) IntN(n int) int {
	s.draws++
	return s.rng.IntN(n)
}

// IntRange returns a value in [lo, hi].
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Range returns a value in [lo, hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// LogRange returns a value in [lo, hi) distributed uniformly in log space.
// Both bounds must be positive.
func (s *Stream) LogRange(lo, hi float64) float64 {
	return math.Exp(s.Range(math.Log(lo), math.Log(hi)))
}

func (s *Stream) Normal(mean, stddev float64) float64 {
	s.draws++
	return mean + stddev*s.rng.NormFloat64()
}

func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}

// Weighted returns an index into weights with probability proportional to
// its weight. Weights must not all be zero.
func (s *Stream) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	roll := s.Float64() * total
	current := 0.0
	for i, w := range weights {
		current += w
		if roll < current {
			return i
		}
	}
	return len(weights) - 1
}

// Pick returns one element of items, which must not be empty.
func Pick[T any](s *Stream, items []T) T {
	return items[s.IntN(len(items))]
}
