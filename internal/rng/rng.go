// Package rng provides the random source consumed by the combat core.
package rng

import (
	"math/rand/v2"

	"github.com/udisondev/elemental/internal/attribute"
)

// Source is a uniform random source.
type Source interface {
	// CriticalCheck draws uniformly from [0, 100) and reports whether the
	// draw falls below chance.
	CriticalCheck(chance attribute.Percent) bool
	CoinFlip() bool
}

// Rand is a seedable PCG-backed Source. Not safe for concurrent use;
// give every goroutine its own instance.
type Rand struct {
	r *rand.Rand
}

// New creates a deterministic source from seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Rand) CriticalCheck(chance attribute.Percent) bool {
	return r.r.Float64()*100 < float64(chance)
}

func (r *Rand) CoinFlip() bool {
	return r.r.IntN(2) == 0
}

// Fixed is a Source that always returns the configured answers.
type Fixed struct {
	Crit bool
	Coin bool
}

func (f Fixed) CriticalCheck(attribute.Percent) bool { return f.Crit }
func (f Fixed) CoinFlip() bool                       { return f.Coin }

// Sequence replays crit outcomes in order and then repeats the last one.
type Sequence struct {
	crits []bool
	next  int
}

// NewSequence creates a Sequence over the given crit outcomes.
func NewSequence(crits ...bool) *Sequence {
	return &Sequence{crits: crits}
}

func (s *Sequence) CriticalCheck(attribute.Percent) bool {
	if len(s.crits) == 0 {
		return false
	}
	v := s.crits[min(s.next, len(s.crits)-1)]
	s.next++
	return v
}

func (s *Sequence) CoinFlip() bool { return false }

var (
	_ Source = (*Rand)(nil)
	_ Source = Fixed{}
	_ Source = (*Sequence)(nil)
)
