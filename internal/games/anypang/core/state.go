package core

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// State owns a board and the source that refills it.
// It is not safe for concurrent use.
type State struct {
	board *Board
	src   Source
	ticks int // productive ticks
	swaps int // accepted swaps
}

// NewState creates a state with a board drawn from src.
func NewState(src Source) (*State, error) {
	b, err := NewBoard(src)
	if err != nil {
		return nil, err
	}
	return &State{board: b, src: src}, nil
}

// NewStateWithBoard wraps an existing board. src is used for refills only.
func NewStateWithBoard(b *Board, src Source) *State {
	return &State{board: b, src: src}
}

// Board returns the owned board for read access.
func (s *State) Board() *Board {
	return s.board
}

// Ticks returns the number of productive ticks so far.
func (s *State) Ticks() int {
	return s.ticks
}

// Swaps returns the number of accepted swaps so far.
func (s *State) Swaps() int {
	return s.swaps
}

// Tick runs one detect, resolve and compact pass.
// It returns nil groups when the board has no run. Cascades are not
// resolved here: the caller invokes Tick again until it reports none.
// On error the board is unchanged apart from reset previous rows.
func (s *State) Tick() ([]Group, error) {
	s.board.resetPreviousRows()

	seeds := FindSeeds(s.board)
	if len(seeds) == 0 {
		return nil, nil
	}
	groups, claimed := ResolveGroups(s.board, seeds)
	if err := Compact(s.board, &claimed, s.src); err != nil {
		return nil, err
	}
	s.ticks++
	return groups, nil
}

// SwapResult reports the outcome of TrySwap.
type SwapResult struct {
	Swapped bool    // the swap produced at least one group and was kept
	Groups  []Group // groups removed by the first tick after the swap
}

// TrySwap exchanges the types of two adjacent cells and keeps the swap only
// if it produces a removal. Non-adjacent pairs are rejected without error.
func (s *State) TrySwap(a, b Coord) (SwapResult, error) {
	if !a.InBounds() {
		return SwapResult{}, fmt.Errorf("core: swap %v: %w", a, ErrOutOfBounds)
	}
	if !b.InBounds() {
		return SwapResult{}, fmt.Errorf("core: swap %v: %w", b, ErrOutOfBounds)
	}
	if !a.Adjacent(b) {
		return SwapResult{}, nil
	}

	s.board.Swap(a, b)
	groups, err := s.Tick()
	if err != nil {
		s.board.Swap(a, b)
		return SwapResult{}, err
	}
	if groups == nil {
		s.board.Swap(a, b)
		return SwapResult{}, nil
	}
	s.swaps++
	return SwapResult{Swapped: true, Groups: groups}, nil
}

// Settle runs Tick until the board is stable and returns every group in
// tick order. Used for headless play and to stabilize a fresh board.
func (s *State) Settle() ([][]Group, error) {
	var chain [][]Group
	for {
		groups, err := s.Tick()
		if err != nil {
			return chain, err
		}
		if groups == nil {
			return chain, nil
		}
		chain = append(chain, groups)
	}
}

// Reshuffle replaces every token with a fresh draw from the source.
// The counters are kept. Nothing changes if the source fails.
func (s *State) Reshuffle() error {
	b, err := NewBoard(s.src)
	if err != nil {
		return err
	}
	s.board = b
	return nil
}

// Hash returns an fnv-64a hash of the board types, previous rows and the
// tick counter, for determinism checks.
func (s *State) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, c := range s.board.cells {
		buf[0] = byte(c.Type)
		binary.LittleEndian.PutUint32(buf[1:5], uint32(c.PreviousRow))
		h.Write(buf[:5])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(s.ticks))
	h.Write(buf[:])
	return h.Sum64()
}
