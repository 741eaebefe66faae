package core

import (
	"fmt"
	"strings"
)

// Board is the fixed Size x Size grid of typed tokens.
// Cells are stored row-major, index = y*Size + x, row 0 at the bottom.
type Board struct {
	cells [cellCount]Cell
}

func index(x, y int) int {
	return y*Size + x
}

// NewBoard fills a board from src in index order (0..Size*Size-1).
// The initial board may contain runs; the first Tick resolves them.
func NewBoard(src Source) (*Board, error) {
	b := &Board{}
	for i := range cellCount {
		t, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("core: fill cell %d: %w", i, err)
		}
		b.cells[i] = Cell{Type: t, X: i % Size, Y: i / Size, PreviousRow: i / Size}
	}
	return b, nil
}

// NewBoardFromTypes builds a board from Size*Size types in index order.
func NewBoardFromTypes(types []Type) (*Board, error) {
	if len(types) != cellCount {
		return nil, fmt.Errorf("core: expected %d cells, got %d: %w", cellCount, len(types), ErrInvalidLayout)
	}
	return NewBoard(NewSequenceSource(types...))
}

// NewBoardFromRows builds a board from Size strings of Size digits.
// The first string is the TOP row (y = Size-1), so rows read the way the
// board is drawn.
func NewBoardFromRows(rows []string) (*Board, error) {
	types, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return NewBoardFromTypes(types)
}

// ParseRows converts top-first digit rows into index-ordered types.
// Spaces inside a row are ignored.
func ParseRows(rows []string) ([]Type, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("core: expected %d rows, got %d: %w", Size, len(rows), ErrInvalidLayout)
	}
	types := make([]Type, cellCount)
	for r, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != Size {
			return nil, fmt.Errorf("core: row %d has %d cells, expected %d: %w", r, len(row), Size, ErrInvalidLayout)
		}
		y := Size - 1 - r
		for x, ch := range row {
			if ch < '0' || ch >= '0'+TypeCount {
				return nil, fmt.Errorf("core: row %d col %d: invalid type %q: %w", r, x, ch, ErrInvalidLayout)
			}
			types[index(x, y)] = Type(ch - '0')
		}
	}
	return types, nil
}

// Get returns the cell at (x, y).
func (b *Board) Get(x, y int) (Cell, error) {
	if !C(x, y).InBounds() {
		return Cell{}, fmt.Errorf("core: get %v: %w", C(x, y), ErrOutOfBounds)
	}
	return b.cells[index(x, y)], nil
}

// At returns the cell at c without bounds reporting. c must be in bounds.
func (b *Board) At(c Coord) Cell {
	return b.cells[index(c.X, c.Y)]
}

// TypeAt returns the token type at (x, y). Coordinates must be in bounds.
func (b *Board) TypeAt(x, y int) Type {
	return b.cells[index(x, y)].Type
}

// Swap exchanges the token types of two in-bounds cells.
// Positions and previous rows stay with the slots.
func (b *Board) Swap(a, c Coord) {
	ia, ic := index(a.X, a.Y), index(c.X, c.Y)
	b.cells[ia].Type, b.cells[ic].Type = b.cells[ic].Type, b.cells[ia].Type
}

// Cells returns a copy of all cells in index order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, cellCount)
	copy(out, b.cells[:])
	return out
}

// Types returns the token types in index order.
func (b *Board) Types() []Type {
	out := make([]Type, cellCount)
	for i, c := range b.cells {
		out[i] = c.Type
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Rows renders the board as top-first digit rows, the inverse of ParseRows.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	var sb strings.Builder
	for r := range Size {
		sb.Reset()
		y := Size - 1 - r
		for x := range Size {
			sb.WriteByte(byte('0' + b.TypeAt(x, y)))
		}
		rows[r] = sb.String()
	}
	return rows
}

// String returns the board as newline separated rows, top row first.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// resetPreviousRows marks every token as resting in its current row.
func (b *Board) resetPreviousRows() {
	for i := range b.cells {
		b.cells[i].PreviousRow = b.cells[i].Y
	}
}
