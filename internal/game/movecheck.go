package game

// IsValidMove reports whether a token may step from current to target:
// target in bounds, exactly one orthogonal step away, and no wall on the
// shared edge.
func IsValidMove(current, target Position, walls []Wall, gridSize int) bool {
	if !target.InBounds(gridSize) {
		return false
	}

	dr := abs(target.Row - current.Row)
	dc := abs(target.Col - current.Col)
	if dr+dc != 1 {
		return false
	}

	for _, w := range walls {
		if blocks(w, current, target) {
			return false
		}
	}
	return true
}

// blocks reports whether w lies on the edge between two adjacent cells.
// A horizontal wall at (x, y) separates row y-1 from row y at column x; a
// vertical wall at (x, y) separates column x-1 from column x at row y.
func blocks(w Wall, a, b Position) bool {
	switch {
	case a.Col == b.Col:
		return w.Orientation == Horizontal && w.X == a.Col && w.Y == min(a.Row, b.Row)+1
	case a.Row == b.Row:
		return w.Orientation == Vertical && w.Y == a.Row && w.X == min(a.Col, b.Col)+1
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
