package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/anypang/internal/games/anypang/core"
)

func TestNewBoardDrawsInIndexOrder(t *testing.T) {
	types := stripes()
	b := mustBoard(t, types)

	for i, want := range types {
		c := cellAt(t, b, i%core.Size, i/core.Size)
		if c.Type != want {
			t.Errorf("cell %d: type = %d, expected %d", i, c.Type, want)
		}
		if c.X != i%core.Size || c.Y != i/core.Size {
			t.Errorf("cell %d: position = (%d,%d)", i, c.X, c.Y)
		}
		if c.PreviousRow != c.Y {
			t.Errorf("cell %d: PreviousRow = %d, expected %d", i, c.PreviousRow, c.Y)
		}
	}
}

func TestNewBoardSourceExhausted(t *testing.T) {
	_, err := core.NewBoard(core.NewSequenceSource(1, 2, 3))
	if !errors.Is(err, core.ErrSourceExhausted) {
		t.Errorf("NewBoard() error = %v, expected ErrSourceExhausted", err)
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	a, err := core.NewBoard(core.NewRandSource(99))
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	b, err := core.NewBoard(core.NewRandSource(99))
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if !sameTypes(a.Types(), b.Types()) {
		t.Error("boards from the same seed differ")
	}
}

func TestGetOutOfBounds(t *testing.T) {
	b := mustBoard(t, stripes())

	tests := []struct{ x, y int }{
		{-1, 0},
		{0, -1},
		{core.Size, 0},
		{0, core.Size},
		{core.Size, core.Size},
	}
	for _, tt := range tests {
		if _, err := b.Get(tt.x, tt.y); !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("Get(%d,%d) error = %v, expected ErrOutOfBounds", tt.x, tt.y, err)
		}
	}
}

func TestParseRowsTopRowFirst(t *testing.T) {
	rows := []string{
		"4444444444",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0000000000",
		"0123401234",
	}
	b, err := core.NewBoardFromRows(rows)
	if err != nil {
		t.Fatalf("NewBoardFromRows failed: %v", err)
	}

	if got := cellAt(t, b, 3, 0).Type; got != 3 {
		t.Errorf("bottom row (3,0) = %d, expected 3", got)
	}
	if got := cellAt(t, b, 0, core.Size-1).Type; got != 4 {
		t.Errorf("top row (0,9) = %d, expected 4", got)
	}

	back := b.Rows()
	for i := range rows {
		if back[i] != rows[i] {
			t.Errorf("Rows()[%d] = %q, expected %q", i, back[i], rows[i])
		}
	}
}

func TestParseRowsInvalid(t *testing.T) {
	valid := make([]string, core.Size)
	for i := range valid {
		valid[i] = "0123401234"
	}

	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", valid[:9]},
		{"short row", append(append([]string{}, valid[:9]...), "01234")},
		{"type out of range", append(append([]string{}, valid[:9]...), "0123456789")},
		{"non digit", append(append([]string{}, valid[:9]...), "012340123x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := core.ParseRows(tt.rows); !errors.Is(err, core.ErrInvalidLayout) {
				t.Errorf("ParseRows() error = %v, expected ErrInvalidLayout", err)
			}
		})
	}
}

func TestNewBoardFromTypesWrongLength(t *testing.T) {
	if _, err := core.NewBoardFromTypes(make([]core.Type, 10)); !errors.Is(err, core.ErrInvalidLayout) {
		t.Errorf("NewBoardFromTypes() error = %v, expected ErrInvalidLayout", err)
	}
}

func TestSwapExchangesTypesOnly(t *testing.T) {
	b := mustBoard(t, stripes())
	before0 := cellAt(t, b, 0, 0)
	before1 := cellAt(t, b, 1, 0)

	b.Swap(core.C(0, 0), core.C(1, 0))

	after0 := cellAt(t, b, 0, 0)
	after1 := cellAt(t, b, 1, 0)
	if after0.Type != before1.Type || after1.Type != before0.Type {
		t.Errorf("types not exchanged: %d,%d", after0.Type, after1.Type)
	}
	if after0.X != 0 || after1.X != 1 {
		t.Errorf("positions moved with types")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, stripes())
	c := b.Clone()
	c.Swap(core.C(0, 0), core.C(1, 0))

	if sameTypes(b.Types(), c.Types()) {
		t.Error("clone shares storage with original")
	}
}
