package core_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/anypang/internal/games/anypang/core"
	"github.com/vovakirdan/anypang/internal/games/anypang/layouts"
)

// getTestdataPath returns path to testdata/layouts.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "layouts")
}

// stripes returns a board with no runs and no productive swaps:
// type(x, y) = (x + 2y) mod 5.
func stripes() []core.Type {
	types := make([]core.Type, core.Size*core.Size)
	for y := range core.Size {
		for x := range core.Size {
			types[y*core.Size+x] = core.Type((x + 2*y) % core.TypeCount)
		}
	}
	return types
}

func set(types []core.Type, t core.Type, coords ...core.Coord) {
	for _, c := range coords {
		types[c.Y*core.Size+c.X] = t
	}
}

func mustBoard(t *testing.T, types []core.Type) *core.Board {
	t.Helper()
	b, err := core.NewBoardFromTypes(types)
	if err != nil {
		t.Fatalf("NewBoardFromTypes failed: %v", err)
	}
	return b
}

func mustLayout(t *testing.T, id string) layouts.Layout {
	t.Helper()
	l, err := layouts.NewLoader(getTestdataPath()).LoadByID(id)
	if err != nil {
		t.Fatalf("LoadByID(%q) failed: %v", id, err)
	}
	return l
}

func cellAt(t *testing.T, b *core.Board, x, y int) core.Cell {
	t.Helper()
	c, err := b.Get(x, y)
	if err != nil {
		t.Fatalf("Get(%d,%d) failed: %v", x, y, err)
	}
	return c
}

func sameTypes(a, b []core.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
