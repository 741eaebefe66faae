package core

// FindSeeds returns every 3-window in a row or column whose cells share a
// type. Seeds come in discovery order: for each i, for each j, the row
// window at (j, i) then the column window at (i, j). The board is not
// modified.
func FindSeeds(b *Board) []Seed {
	var seeds []Seed
	for i := range Size {
		for j := 0; j < Size-runLength+1; j++ {
			if rowRun(b, j, i) {
				seeds = append(seeds, Seed{Origin: C(j, i), Orientation: Horizontal})
			}
			if colRun(b, i, j) {
				seeds = append(seeds, Seed{Origin: C(i, j), Orientation: Vertical})
			}
		}
	}
	return seeds
}

// HasSeed reports whether any run of three exists.
func HasSeed(b *Board) bool {
	for i := range Size {
		for j := 0; j < Size-runLength+1; j++ {
			if rowRun(b, j, i) || colRun(b, i, j) {
				return true
			}
		}
	}
	return false
}

func rowRun(b *Board, x, y int) bool {
	t := b.TypeAt(x, y)
	return b.TypeAt(x+1, y) == t && b.TypeAt(x+2, y) == t
}

func colRun(b *Board, x, y int) bool {
	t := b.TypeAt(x, y)
	return b.TypeAt(x, y+1) == t && b.TypeAt(x, y+2) == t
}
