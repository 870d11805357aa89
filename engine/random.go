package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the uniform [0,1) source used for particles, relaunches and render shake
// Not for security
type Random interface {
	Float64() float64
}

// NewRandom returns a PCG-backed source; seed 0 picks a time-based seed
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform maps a draw from r into [lo, hi)
func Uniform(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// SequenceRandom replays fixed values in order, wrapping at the end
// Used by tests that need exact draws
type SequenceRandom struct {
	Values []float64
	next   int
}

// Float64 returns the next value of the sequence, or 0 when empty
func (s *SequenceRandom) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
