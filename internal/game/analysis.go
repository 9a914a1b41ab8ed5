package game

type slot struct {
	x, y int
	o    Orientation
}

// wallIndex answers "is this edge blocked" in constant time.
type wallIndex map[slot]struct{}

func indexWalls(walls []Wall) wallIndex {
	idx := make(wallIndex, len(walls))
	for _, w := range walls {
		idx[slot{w.X, w.Y, w.Orientation}] = struct{}{}
	}
	return idx
}

func (idx wallIndex) blocked(a, b Position) bool {
	var s slot
	if a.Col == b.Col {
		s = slot{a.Col, min(a.Row, b.Row) + 1, Horizontal}
	} else {
		s = slot{min(a.Col, b.Col) + 1, a.Row, Vertical}
	}
	_, ok := idx[s]
	return ok
}

var steps = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (idx wallIndex) neighbors(p Position, gridSize int, fn func(Position)) {
	for _, d := range steps {
		q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !q.InBounds(gridSize) || idx.blocked(p, q) {
			continue
		}
		fn(q)
	}
}

// distanceToRow runs a breadth-first search from start and returns the number
// of steps to the nearest cell on goalRow.
func (idx wallIndex) distanceToRow(start Position, goalRow, gridSize int) (int, bool) {
	if !start.InBounds(gridSize) {
		return 0, false
	}
	if start.Row == goalRow {
		return 0, true
	}

	dist := make([]int, gridSize*gridSize)
	for i := range dist {
		dist[i] = -1
	}
	at := func(p Position) int { return p.Row*gridSize + p.Col }

	dist[at(start)] = 0
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[at(cur)]

		found := -1
		idx.neighbors(cur, gridSize, func(q Position) {
			if found >= 0 || dist[at(q)] >= 0 {
				return
			}
			dist[at(q)] = d + 1
			if q.Row == goalRow {
				found = d + 1
				return
			}
			queue = append(queue, q)
		})
		if found >= 0 {
			return found, true
		}
	}
	return 0, false
}

// GoalRow is row 0 for player1 and the last row for player2.
func GoalRow(id PlayerID, gridSize int) int {
	if id == Player1 {
		return 0
	}
	return gridSize - 1
}

// PathExists reports whether a token at start can reach goalRow through legal
// single steps.
func PathExists(start Position, goalRow int, walls []Wall, gridSize int) bool {
	_, ok := indexWalls(walls).distanceToRow(start, goalRow, gridSize)
	return ok
}

// ShortestPathLength is the minimum number of moves from start to goalRow.
func ShortestPathLength(start Position, goalRow int, walls []Wall, gridSize int) (int, bool) {
	return indexWalls(walls).distanceToRow(start, goalRow, gridSize)
}

// LegalTargets lists every cell a token at from may step to.
func LegalTargets(from Position, walls []Wall, gridSize int) []Position {
	idx := indexWalls(walls)
	out := []Position{}
	idx.neighbors(from, gridSize, func(q Position) {
		out = append(out, q)
	})
	return out
}
