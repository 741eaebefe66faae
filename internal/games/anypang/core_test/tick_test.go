package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/anypang/internal/games/anypang/core"
)

func TestTickStableBoardReturnsNone(t *testing.T) {
	s := core.NewStateWithBoard(mustBoard(t, stripes()), core.NewSequenceSource())
	before := s.Hash()

	groups, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if groups != nil {
		t.Errorf("Tick() = %v, expected none", groups)
	}
	if s.Hash() != before {
		t.Error("stable tick changed the state")
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", s.Ticks())
	}
}

func TestTickSingleRowRun(t *testing.T) {
	layout := mustLayout(t, "scenario_a")
	b, err := layout.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	before := b.Clone()
	s := core.NewStateWithBoard(b, core.NewSequenceSource(2, 2, 1))

	groups, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	want := []core.Coord{core.C(0, 2), core.C(1, 2), core.C(2, 2)}
	if g.Len() != len(want) {
		t.Fatalf("group size = %d, expected %d", g.Len(), len(want))
	}
	for i, c := range want {
		if g[i].Coord() != c {
			t.Errorf("group[%d] = %v, expected %v", i, g[i].Coord(), c)
		}
		if g[i].Type != 0 {
			t.Errorf("group[%d] type = %d, expected 0", i, g[i].Type)
		}
	}

	refill := []core.Type{2, 2, 1}
	for x := range core.Size {
		for y := range core.Size {
			got := cellAt(t, s.Board(), x, y)
			var wantType core.Type
			var wantPrev int
			switch {
			case x > 2 || y < 2:
				wantType, wantPrev = before.TypeAt(x, y), y
			case y < core.Size-1:
				wantType, wantPrev = before.TypeAt(x, y+1), y+1
			default:
				wantType, wantPrev = refill[x], core.Size
			}
			if got.Type != wantType {
				t.Errorf("(%d,%d) type = %d, expected %d", x, y, got.Type, wantType)
			}
			if got.PreviousRow != wantPrev {
				t.Errorf("(%d,%d) PreviousRow = %d, expected %d", x, y, got.PreviousRow, wantPrev)
			}
		}
	}

	groups, err = s.Tick()
	if err != nil {
		t.Fatalf("second Tick failed: %v", err)
	}
	if groups != nil {
		t.Errorf("second Tick() = %v, expected none", groups)
	}
	for i, c := range s.Board().Cells() {
		if c.PreviousRow != c.Y {
			t.Errorf("cell %d: PreviousRow = %d after idle tick, expected %d", i, c.PreviousRow, c.Y)
		}
	}
}

func TestTickCrossingRunsMerge(t *testing.T) {
	layout := mustLayout(t, "scenario_b")
	b, err := layout.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	before := b.Clone()
	s := core.NewStateWithBoard(b, core.NewSequenceSource(1, 2, 3, 4, 0))

	groups, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	want := []core.Coord{
		core.C(2, 3), core.C(3, 3), core.C(4, 3),
		core.C(3, 1), core.C(3, 2),
	}
	if groups[0].Len() != len(want) {
		t.Fatalf("group size = %d, expected %d", groups[0].Len(), len(want))
	}
	for _, c := range want {
		if !groups[0].Contains(c) {
			t.Errorf("group missing %v", c)
		}
	}

	// Column 3 lost three cells: rows 4..9 drop to 1..6, three fresh tokens on top.
	if c := cellAt(t, s.Board(), 3, 0); c.PreviousRow != 0 || c.Type != before.TypeAt(3, 0) {
		t.Errorf("(3,0) = %+v, expected untouched", c)
	}
	for y := 1; y <= 6; y++ {
		c := cellAt(t, s.Board(), 3, y)
		if c.Type != before.TypeAt(3, y+3) || c.PreviousRow != y+3 {
			t.Errorf("(3,%d) = %+v, expected type %d from row %d", y, c, before.TypeAt(3, y+3), y+3)
		}
	}
	fresh := map[core.Coord]core.Cell{
		core.C(2, 9): {Type: 1, PreviousRow: 10},
		core.C(3, 7): {Type: 2, PreviousRow: 10},
		core.C(3, 8): {Type: 3, PreviousRow: 11},
		core.C(3, 9): {Type: 4, PreviousRow: 12},
		core.C(4, 9): {Type: 0, PreviousRow: 10},
	}
	for pos, w := range fresh {
		c := cellAt(t, s.Board(), pos.X, pos.Y)
		if c.Type != w.Type || c.PreviousRow != w.PreviousRow {
			t.Errorf("%v = type %d prev %d, expected type %d prev %d", pos, c.Type, c.PreviousRow, w.Type, w.PreviousRow)
		}
	}
}

func TestTickGroupShapes(t *testing.T) {
	tests := []struct {
		name      string
		typ       core.Type
		coords    []core.Coord
		wantSizes []int
	}{
		{
			name:      "run of five",
			typ:       2,
			coords:    []core.Coord{core.C(2, 7), core.C(3, 7), core.C(4, 7), core.C(5, 7), core.C(6, 7)},
			wantSizes: []int{5},
		},
		{
			name: "T shape",
			typ:  3,
			coords: []core.Coord{
				core.C(3, 5), core.C(4, 5), core.C(5, 5),
				core.C(4, 4), core.C(4, 3), core.C(4, 2),
			},
			wantSizes: []int{6},
		},
		{
			name: "L shape",
			typ:  0,
			coords: []core.Coord{
				core.C(5, 4), core.C(6, 4), core.C(7, 4),
				core.C(5, 5), core.C(5, 6),
			},
			wantSizes: []int{5},
		},
		{
			name: "parallel runs stay separate",
			typ:  2,
			coords: []core.Coord{
				core.C(0, 0), core.C(1, 0), core.C(2, 0),
				core.C(0, 1), core.C(1, 1), core.C(2, 1),
			},
			wantSizes: []int{3, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types := stripes()
			set(types, tt.typ, tt.coords...)
			b := mustBoard(t, types)

			seeds := core.FindSeeds(b)
			groups, claimed := core.ResolveGroups(b, seeds)

			if len(groups) != len(tt.wantSizes) {
				t.Fatalf("got %d groups, expected %d", len(groups), len(tt.wantSizes))
			}
			for i, g := range groups {
				if g.Len() != tt.wantSizes[i] {
					t.Errorf("group %d size = %d, expected %d", i, g.Len(), tt.wantSizes[i])
				}
				if g.Type() != tt.typ {
					t.Errorf("group %d type = %d, expected %d", i, g.Type(), tt.typ)
				}
			}
			if claimed.Count() != len(tt.coords) {
				t.Errorf("claimed = %d cells, expected %d", claimed.Count(), len(tt.coords))
			}
		})
	}
}

func TestTickGroupsInDiscoveryOrder(t *testing.T) {
	types := stripes()
	set(types, 4, core.C(0, 0), core.C(1, 0), core.C(2, 0))
	set(types, 1, core.C(9, 5), core.C(9, 6), core.C(9, 7))
	b := mustBoard(t, types)

	groups, _ := core.ResolveGroups(b, core.FindSeeds(b))
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Type() != 4 || groups[1].Type() != 1 {
		t.Errorf("group types = %d,%d, expected 4,1", groups[0].Type(), groups[1].Type())
	}
}

func TestTickSourceExhaustedLeavesBoard(t *testing.T) {
	layout := mustLayout(t, "scenario_a")
	b, err := layout.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	before := b.Types()
	s := core.NewStateWithBoard(b, core.NewSequenceSource(1, 2))

	groups, err := s.Tick()
	if !errors.Is(err, core.ErrSourceExhausted) {
		t.Fatalf("Tick() error = %v, expected ErrSourceExhausted", err)
	}
	if groups != nil {
		t.Errorf("Tick() groups = %v on error", groups)
	}
	if !sameTypes(before, s.Board().Types()) {
		t.Error("board changed after failed refill")
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", s.Ticks())
	}
}

func TestCompactRefillOrder(t *testing.T) {
	types := stripes()
	b := mustBoard(t, types)

	var claimed core.ClaimSet
	claimed.Claim(core.C(5, 0))
	claimed.Claim(core.C(5, 4))
	claimed.Claim(core.C(1, 9))

	src := core.NewSequenceSource(0, 1, 2)
	if err := core.Compact(b, &claimed, src); err != nil {
		t.Fatalf("Compact failed: %v", err)
	}

	// Column 1 is drawn first, then column 5 lowest vacated slot first.
	checks := []struct {
		x, y int
		typ  core.Type
		prev int
	}{
		{1, 9, 0, core.Size},
		{5, 8, 1, core.Size},
		{5, 9, 2, core.Size + 1},
	}
	for _, c := range checks {
		got := cellAt(t, b, c.x, c.y)
		if got.Type != c.typ || got.PreviousRow != c.prev {
			t.Errorf("(%d,%d) = type %d prev %d, expected type %d prev %d",
				c.x, c.y, got.Type, got.PreviousRow, c.typ, c.prev)
		}
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", src.Remaining())
	}
}

func TestRefillDrawsOncePerRemovedCell(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		src := &core.CountingSource{Source: core.NewRandSource(seed)}
		s := core.NewStateWithBoard(mustBoard(t, swappable()), src)

		res, err := s.TrySwap(core.C(2, 0), core.C(2, 1))
		if err != nil || !res.Swapped {
			t.Fatalf("seed %d: TrySwap() = %v, %v, expected a kept swap", seed, res, err)
		}
		chain, err := s.Settle()
		if err != nil {
			t.Fatalf("seed %d: Settle failed: %v", seed, err)
		}

		removed := 0
		for _, groups := range append([][]core.Group{res.Groups}, chain...) {
			for _, g := range groups {
				removed += g.Len()
			}
		}
		if src.Draws != removed {
			t.Errorf("seed %d: %d draws for %d removed cells", seed, src.Draws, removed)
		}
	}
}
