// Package puzzle implements the sliding-tile grid: an N×N arrangement of
// numbered tiles with a single blank cell, slide moves, solved detection,
// a solvable shuffle and the staggered add/remove tile animation.
//
// The package has no knowledge of rendering or input. Callers read tiles
// through value copies and mutate the grid only through its move methods.
package puzzle

// Tile is a single identity-bearing piece of the puzzle.
type Tile struct {
	ID      int  // 1..N², stable for the lifetime of the grid
	Visible bool // The blank tile stays hidden until the grid is solved
}

// Position addresses a grid cell.
type Position struct {
	Row    int
	Column int
}

// Move is a single-step slide of the blank cell.
//
// The names follow the direction the visible tile content travels, not the
// blank: MoveLeft pulls the tile to the right of the blank into the blank,
// so the blank itself moves one column to the right.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveDown
	MoveUp
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	case MoveUp:
		return "up"
	default:
		return "unknown"
	}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	case MoveDown:
		return MoveUp
	default:
		return MoveDown
	}
}
