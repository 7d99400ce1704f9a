package puzzle

import (
	"math/rand"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// NewShuffled creates a grid of the given size and shuffles it.
func NewShuffled(size, iterations int, rng *rand.Rand) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	g.Shuffle(iterations, rng)
	return g, nil
}

// Shuffle scrambles the grid using only legal single-step slides, so the
// result is always solvable. It returns the slides it applied, in order.
//
// Each pass visits every cell of the grid once, in a random order drawn
// without replacement, and walks the blank to it along a random monotone
// path. Passes continue past iterations while the grid is still solved,
// so the result is never the solved layout.
func (g *Grid) Shuffle(iterations int, rng *rand.Rand) []Move {
	n := g.size * g.size

	cells := make([]Position, 0, n)
	for row := range g.size {
		for column := range g.size {
			cells = append(cells, Position{Row: row, Column: column})
		}
	}

	var trail []Move
	for i := 0; i < iterations || g.Solved(); i++ {
		for j := 1; j <= n; j++ {
			// Pick one of the n-j+1 cells not yet drawn in this pass
			index := rng.Intn(n - j + 1)
			cell := cells[index]

			horizontal := cell.Column - g.empty.Column
			vertical := cell.Row - g.empty.Row
			moves := core.Abs(horizontal) + core.Abs(vertical)

			for k := 1; k <= moves; k++ {
				var m Move
				if rng.Intn(moves-k+1) < core.Abs(horizontal) {
					if horizontal < 0 {
						m = MoveRight
						horizontal++
					} else {
						m = MoveLeft
						horizontal--
					}
				} else {
					if vertical < 0 {
						m = MoveDown
						vertical++
					} else {
						m = MoveUp
						vertical--
					}
				}
				g.Slide(m)
				trail = append(trail, m)
			}

			// Move the drawn cell out of the remaining pool
			cells[index] = cells[n-j]
			cells[n-j] = cell
		}
	}

	return trail
}
