package core

import "fmt"

// Compact removes every claimed cell, lets survivors fall toward row 0
// keeping their relative order, and refills the vacated top slots from src.
//
// Columns are processed left to right; inside a column the lowest vacated
// slot is drawn first. All draws happen before the board is touched, so a
// failing source leaves the board exactly as it was.
func Compact(b *Board, claimed *ClaimSet, src Source) error {
	var fresh [Size][]Type
	for x := range Size {
		for y := range Size {
			if !claimed.Claimed(C(x, y)) {
				continue
			}
			t, err := src.Next()
			if err != nil {
				return fmt.Errorf("core: refill column %d: %w", x, err)
			}
			fresh[x] = append(fresh[x], t)
		}
	}

	for x := range Size {
		if len(fresh[x]) == 0 {
			continue
		}
		compactColumn(b, claimed, x, fresh[x])
	}
	return nil
}

func compactColumn(b *Board, claimed *ClaimSet, x int, fresh []Type) {
	var column [Size]Cell
	n := 0
	for y := range Size {
		if claimed.Claimed(C(x, y)) {
			continue
		}
		column[n] = b.cells[index(x, y)]
		n++
	}
	for i, t := range fresh {
		column[n] = Cell{Type: t, PreviousRow: Size + i}
		n++
	}
	for y := range Size {
		c := column[y]
		c.X, c.Y = x, y
		b.cells[index(x, y)] = c
	}
}
