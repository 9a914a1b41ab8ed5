package game

// IsValidWallPlacement reports whether w may be added to walls. The wall must
// sit on a grid line inside the board, must not duplicate an existing
// (x, y, orientation), and must leave every player a path to their goal row.
func IsValidWallPlacement(walls []Wall, w Wall, players Players, gridSize int) bool {
	if !wallInBounds(w, gridSize) {
		return false
	}

	for _, existing := range walls {
		if existing.sameSlot(w) {
			return false
		}
	}

	idx := indexWalls(walls)
	idx[slot{w.X, w.Y, w.Orientation}] = struct{}{}
	for id, p := range players {
		if _, ok := idx.distanceToRow(p.Position, GoalRow(id, gridSize), gridSize); !ok {
			return false
		}
	}
	return true
}

func wallInBounds(w Wall, gridSize int) bool {
	if w.X < 0 || w.Y < 0 {
		return false
	}
	switch w.Orientation {
	case Horizontal:
		return w.X < gridSize && w.Y <= gridSize
	case Vertical:
		return w.X <= gridSize && w.Y < gridSize
	}
	return false
}
