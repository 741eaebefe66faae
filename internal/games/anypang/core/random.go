package core

import (
	"fmt"
	"math/rand"
)

// Source produces token types on demand.
// Board content is fully determined by the order of Next calls: construction
// draws index 0..Size*Size-1, refill draws columns left to right and, within
// a column, the lowest vacated slot first.
type Source interface {
	Next() (Type, error)
}

// RandSource is a seedable Source backed by math/rand. It never fails.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a deterministic source for the given seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next token type.
func (s *RandSource) Next() (Type, error) {
	return Type(s.rng.Intn(TypeCount)), nil
}

// SequenceSource replays a fixed list of types and then fails with
// ErrSourceExhausted. Useful for fixtures and tests.
type SequenceSource struct {
	types []Type
	pos   int
}

// NewSequenceSource creates a finite source.
func NewSequenceSource(types ...Type) *SequenceSource {
	return &SequenceSource{types: types}
}

// Next returns the next queued type.
func (s *SequenceSource) Next() (Type, error) {
	if s.pos >= len(s.types) {
		return 0, ErrSourceExhausted
	}
	t := s.types[s.pos]
	if !t.Valid() {
		return 0, fmt.Errorf("core: sequence value %d at position %d: %w", t, s.pos, ErrInvalidLayout)
	}
	s.pos++
	return t, nil
}

// Remaining returns how many types are left.
func (s *SequenceSource) Remaining() int {
	return len(s.types) - s.pos
}

// CountingSource wraps a Source and counts successful draws.
type CountingSource struct {
	Source
	Draws int
}

// Next draws from the wrapped source.
func (s *CountingSource) Next() (Type, error) {
	t, err := s.Source.Next()
	if err == nil {
		s.Draws++
	}
	return t, err
}
