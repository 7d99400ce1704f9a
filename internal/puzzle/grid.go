package puzzle

import (
	"errors"
	"fmt"
)

// MinSize is the smallest grid dimension the puzzle accepts.
const MinSize = 2

// ErrInvalidSize is returned when a grid is requested with size < MinSize.
var ErrInvalidSize = errors.New("puzzle: invalid grid size")

// Grid is the board state: a square arrangement of tiles with one blank.
//
// Invariants: cells holds every id in [1, size²] exactly once, and the cell
// at empty holds the blank (id size²).
type Grid struct {
	size  int
	cells [][]*Tile
	empty Position
}

// New creates a solved grid of the given size.
// Tiles are numbered row-major from 1; the last cell holds the hidden blank.
func New(size int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}

	g := &Grid{
		size:  size,
		cells: make([][]*Tile, size),
	}
	id := 1
	for row := range size {
		g.cells[row] = make([]*Tile, size)
		for column := range size {
			g.cells[row][column] = &Tile{ID: id, Visible: true}
			id++
		}
	}
	g.empty = Position{Row: size - 1, Column: size - 1}
	g.cells[size-1][size-1].Visible = false

	return g, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

// Blank returns the id of the blank tile (N²).
func (g *Grid) Blank() int {
	return g.size * g.size
}

// EmptyCell returns the position of the blank tile.
func (g *Grid) EmptyCell() Position {
	return g.empty
}

// Tile returns a copy of the tile at (row, column).
// Out-of-range coordinates return the zero Tile.
func (g *Grid) Tile(row, column int) Tile {
	if !g.inBounds(row, column) {
		return Tile{}
	}
	return *g.cells[row][column]
}

// IDs returns the tile ids in row-major layout.
func (g *Grid) IDs() [][]int {
	ids := make([][]int, g.size)
	for row := range g.size {
		ids[row] = make([]int, g.size)
		for column := range g.size {
			ids[row][column] = g.cells[row][column].ID
		}
	}
	return ids
}

// Locate returns the position of the tile with the given id.
func (g *Grid) Locate(id int) (Position, bool) {
	for row := range g.size {
		for column := range g.size {
			if g.cells[row][column].ID == id {
				return Position{Row: row, Column: column}, true
			}
		}
	}
	return Position{}, false
}

func (g *Grid) inBounds(row, column int) bool {
	return row >= 0 && row < g.size && column >= 0 && column < g.size
}

// swapEmpty exchanges the blank with the tile at (row, column) and moves the
// empty-cell marker there.
func (g *Grid) swapEmpty(row, column int) {
	e := g.empty
	g.cells[e.Row][e.Column], g.cells[row][column] = g.cells[row][column], g.cells[e.Row][e.Column]
	g.empty = Position{Row: row, Column: column}
}

// SlideLeft moves the tile right of the blank into the blank.
// Returns false without changing anything when the blank is in the last column.
func (g *Grid) SlideLeft() bool {
	if g.empty.Column >= g.size-1 {
		return false
	}
	g.swapEmpty(g.empty.Row, g.empty.Column+1)
	return true
}

// SlideRight moves the tile left of the blank into the blank.
func (g *Grid) SlideRight() bool {
	if g.empty.Column <= 0 {
		return false
	}
	g.swapEmpty(g.empty.Row, g.empty.Column-1)
	return true
}

// SlideDown moves the tile above the blank into the blank.
func (g *Grid) SlideDown() bool {
	if g.empty.Row <= 0 {
		return false
	}
	g.swapEmpty(g.empty.Row-1, g.empty.Column)
	return true
}

// SlideUp moves the tile below the blank into the blank.
func (g *Grid) SlideUp() bool {
	if g.empty.Row >= g.size-1 {
		return false
	}
	g.swapEmpty(g.empty.Row+1, g.empty.Column)
	return true
}

// Slide performs a single move.
func (g *Grid) Slide(m Move) bool {
	switch m {
	case MoveLeft:
		return g.SlideLeft()
	case MoveRight:
		return g.SlideRight()
	case MoveDown:
		return g.SlideDown()
	case MoveUp:
		return g.SlideUp()
	default:
		return false
	}
}

// MoveFor returns the move that would slide the tile with the given id into
// the blank, if that tile is orthogonally adjacent to it.
func (g *Grid) MoveFor(id int) (Move, bool) {
	row, column := g.empty.Row, g.empty.Column
	switch {
	case column < g.size-1 && g.cells[row][column+1].ID == id:
		return MoveLeft, true
	case column > 0 && g.cells[row][column-1].ID == id:
		return MoveRight, true
	case row > 0 && g.cells[row-1][column].ID == id:
		return MoveDown, true
	case row < g.size-1 && g.cells[row+1][column].ID == id:
		return MoveUp, true
	}
	return 0, false
}

// SlideTile slides the tile with the given id into the blank.
// Ids that are not adjacent to the blank (or not on the grid) are ignored.
func (g *Grid) SlideTile(id int) bool {
	m, ok := g.MoveFor(id)
	if !ok {
		return false
	}
	return g.Slide(m)
}

// Solved reports whether the tiles are in ascending row-major order.
func (g *Grid) Solved() bool {
	id := 1
	for row := range g.size {
		for column := range g.size {
			if g.cells[row][column].ID != id {
				return false
			}
			id++
		}
	}
	return true
}

// RevealBlank makes the blank tile visible. Called once the grid is solved.
func (g *Grid) RevealBlank() {
	g.cells[g.empty.Row][g.empty.Column].Visible = true
}
