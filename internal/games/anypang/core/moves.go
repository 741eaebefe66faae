package core

// Move is a productive swap between two adjacent cells.
type Move struct {
	A Coord
	B Coord
}

// FindMoves returns every adjacent swap that would create a run, scanning
// right and up neighbours in index order. The board is left unchanged.
func FindMoves(b *Board) []Move {
	var moves []Move
	forEachMove(b, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasMoves reports whether any productive swap exists.
func HasMoves(b *Board) bool {
	found := false
	forEachMove(b, func(Move) bool {
		found = true
		return false
	})
	return found
}

// FirstMove returns the first productive swap in scan order.
func FirstMove(b *Board) (Move, bool) {
	var first Move
	found := false
	forEachMove(b, func(m Move) bool {
		first, found = m, true
		return false
	})
	return first, found
}

func forEachMove(b *Board, yield func(Move) bool) {
	trial := b.Clone()
	for y := range Size {
		for x := range Size {
			a := C(x, y)
			for _, n := range [...]Coord{a.Add(1, 0), a.Add(0, 1)} {
				if !n.InBounds() || trial.At(a).Type == trial.At(n).Type {
					continue
				}
				trial.Swap(a, n)
				ok := runThrough(trial, a) || runThrough(trial, n)
				trial.Swap(a, n)
				if ok && !yield(Move{A: a, B: n}) {
					return
				}
			}
		}
	}
}

// runThrough reports whether some uniform 3-window contains c.
func runThrough(b *Board, c Coord) bool {
	t := b.At(c).Type
	for _, o := range [...]Orientation{Horizontal, Vertical} {
		dx, dy := o.step()
		for k := range runLength {
			start := c.Add(-dx*k, -dy*k)
			end := start.Add(dx*(runLength-1), dy*(runLength-1))
			if !start.InBounds() || !end.InBounds() {
				continue
			}
			uniform := true
			for i := range runLength {
				if b.At(start.Add(dx*i, dy*i)).Type != t {
					uniform = false
					break
				}
			}
			if uniform {
				return true
			}
		}
	}
	return false
}
