package core

// ClaimSet records which cells have been assigned to a removal group
// during one tick.
type ClaimSet [cellCount]bool

// Claimed reports whether the cell at c is claimed.
func (s *ClaimSet) Claimed(c Coord) bool {
	return s[index(c.X, c.Y)]
}

// Claim marks the cell at c.
func (s *ClaimSet) Claim(c Coord) {
	s[index(c.X, c.Y)] = true
}

// Count returns the number of claimed cells.
func (s *ClaimSet) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// merge claims every cell claimed in other.
func (s *ClaimSet) merge(other *ClaimSet) {
	for i, v := range other {
		if v {
			s[i] = true
		}
	}
}

// ResolveGroups flood-fills each seed into a connected removal group.
// A seed whose origin was claimed by an earlier group is skipped, so every
// cell belongs to at most one group and each group is emitted once.
// The returned ClaimSet is the union of all groups.
func ResolveGroups(b *Board, seeds []Seed) ([]Group, ClaimSet) {
	var tick ClaimSet
	var groups []Group
	for _, seed := range seeds {
		if tick.Claimed(seed.Origin) {
			continue
		}
		f := filler{board: b, earlier: &tick}
		f.visit(seed.Origin)
		if len(f.cells) == 0 {
			continue
		}
		tick.merge(&f.current)
		groups = append(groups, f.cells)
	}
	return groups, tick
}

// filler grows one group. Cells claimed by earlier groups block expansion
// of any window that touches them; cells of the current group are visited
// once.
type filler struct {
	board   *Board
	earlier *ClaimSet
	current ClaimSet
	cells   Group
}

func (f *filler) visit(c Coord) {
	if f.current.Claimed(c) || f.earlier.Claimed(c) {
		return
	}
	f.current.Claim(c)
	f.cells = append(f.cells, f.board.At(c))

	for _, o := range [...]Orientation{Horizontal, Vertical} {
		dx, dy := o.step()
		for k := range runLength {
			start := c.Add(-dx*k, -dy*k)
			if f.expandable(start, o) {
				for _, next := range (Seed{Origin: start, Orientation: o}).Cells() {
					f.visit(next)
				}
			}
		}
	}
}

// expandable reports whether the window starting at start is on the board,
// uniform in type and free of cells owned by earlier groups.
func (f *filler) expandable(start Coord, o Orientation) bool {
	dx, dy := o.step()
	end := start.Add(dx*(runLength-1), dy*(runLength-1))
	if !start.InBounds() || !end.InBounds() {
		return false
	}
	t := f.board.At(start).Type
	for i := range runLength {
		c := start.Add(dx*i, dy*i)
		if f.board.At(c).Type != t || f.earlier.Claimed(c) {
			return false
		}
	}
	return true
}
