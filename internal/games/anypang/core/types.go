// Package core provides the board rules for AnyPang.
// This package is UI-agnostic and deterministic: the board content is fully
// determined by the seed of its Source and the sequence of swaps applied.
package core

import (
	"errors"
	"fmt"
)

// Board dimensions and token alphabet.
const (
	Size      = 10 // Board is Size x Size
	TypeCount = 5  // Token types are 0..TypeCount-1
	cellCount = Size * Size
	runLength = 3 // Minimum run that gets removed
)

var (
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")

	// ErrSourceExhausted is returned when a Source can produce no more tokens.
	ErrSourceExhausted = errors.New("core: random source exhausted")

	// ErrInvalidLayout is returned when a fixed board layout is malformed.
	ErrInvalidLayout = errors.New("core: invalid board layout")
)

// Type is a token kind. Equality of Type is the only matching criterion.
type Type uint8

// Valid reports whether t is inside the token alphabet.
func (t Type) Valid() bool {
	return t < TypeCount
}

// Coord is a board position. Row 0 is the bottom row; gravity pulls
// toward row 0 and new tokens enter above row Size-1.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Adjacent reports whether c and other are 4-neighbours.
func (c Coord) Adjacent(other Coord) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Cell is a snapshot of one board position.
type Cell struct {
	Type Type
	X    int
	Y    int
	// PreviousRow is the row the token occupied before the most recent
	// gravity pass. Freshly spawned tokens get Size+n where n is their
	// spawn order in the column, counted upward from the lowest vacated slot.
	PreviousRow int
}

// Coord returns the cell position.
func (c Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// Fell reports whether the token moved or spawned during the last gravity pass.
func (c Cell) Fell() bool {
	return c.PreviousRow != c.Y
}

// Orientation is the direction of a seed run.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// step returns the offset between consecutive cells of a run.
func (o Orientation) step() (dx, dy int) {
	if o == Vertical {
		return 0, 1
	}
	return 1, 0
}

// Seed is a minimal run of exactly three equal cells starting at Origin.
type Seed struct {
	Origin      Coord
	Orientation Orientation
}

// Cells returns the three coordinates covered by the seed.
func (s Seed) Cells() [runLength]Coord {
	dx, dy := s.Orientation.step()
	var out [runLength]Coord
	for i := range runLength {
		out[i] = s.Origin.Add(dx*i, dy*i)
	}
	return out
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Group is a set of cells removed together in one tick, captured before
// compaction. Cells are in flood-fill visiting order.
type Group []Cell

// Len returns the number of removed cells.
func (g Group) Len() int {
	return len(g)
}

// Type returns the token type shared by every cell in the group.
func (g Group) Type() Type {
	if len(g) == 0 {
		return 0
	}
	return g[0].Type
}

// Contains reports whether the group removed the cell at c.
func (g Group) Contains(c Coord) bool {
	for _, cell := range g {
		if cell.X == c.X && cell.Y == c.Y {
			return true
		}
	}
	return false
}
