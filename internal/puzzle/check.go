package puzzle

import "fmt"

// FromIDs builds a grid from an explicit row-major id layout.
// The layout must be square, at least MinSize wide, and a permutation of
// 1..N². The blank is hidden unless the layout is solved.
func FromIDs(ids [][]int) (*Grid, error) {
	size := len(ids)
	g, err := New(size)
	if err != nil {
		return nil, err
	}

	for row := range size {
		if len(ids[row]) != size {
			return nil, fmt.Errorf("puzzle: row %d has %d columns, want %d", row, len(ids[row]), size)
		}
		for column := range size {
			id := ids[row][column]
			g.cells[row][column] = &Tile{ID: id, Visible: true}
			if id == g.Blank() {
				g.empty = Position{Row: row, Column: column}
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.Solved() {
		g.cells[g.empty.Row][g.empty.Column].Visible = false
	}
	return g, nil
}

// Validate checks the permutation and single-blank invariants.
func (g *Grid) Validate() error {
	n := g.size * g.size
	seen := make([]bool, n+1)
	for row := range g.size {
		for column := range g.size {
			id := g.cells[row][column].ID
			if id < 1 || id > n {
				return fmt.Errorf("puzzle: tile id %d at (%d,%d) out of range", id, row, column)
			}
			if seen[id] {
				return fmt.Errorf("puzzle: duplicate tile id %d", id)
			}
			seen[id] = true
		}
	}

	e := g.empty
	if !g.inBounds(e.Row, e.Column) || g.cells[e.Row][e.Column].ID != n {
		return fmt.Errorf("puzzle: empty cell (%d,%d) does not hold the blank", e.Row, e.Column)
	}
	return nil
}

// Solvable reports whether the current layout can be slid back to the
// solved order, using the 15-puzzle parity rule: the permutation parity of
// the tiles must match the parity of the blank's taxicab distance from the
// bottom-right corner.
func (g *Grid) Solvable() bool {
	flat := make([]int, 0, g.size*g.size)
	for row := range g.size {
		for column := range g.size {
			flat = append(flat, g.cells[row][column].ID)
		}
	}

	// Count transpositions by sorting in place with cycle swaps
	swaps := 0
	for i := range flat {
		for flat[i] != i+1 {
			j := flat[i] - 1
			flat[i], flat[j] = flat[j], flat[i]
			swaps++
		}
	}

	distance := (g.size - 1 - g.empty.Row) + (g.size - 1 - g.empty.Column)
	return swaps%2 == distance%2
}
