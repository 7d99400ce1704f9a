package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, ids [][]int) *Grid {
	t.Helper()
	g, err := FromIDs(ids)
	require.NoError(t, err)
	return g
}

func TestNewRejectsSmallSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		_, err := New(size)
		require.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}
}

func TestNewIsSolved(t *testing.T) {
	for size := MinSize; size <= 10; size++ {
		g, err := New(size)
		require.NoError(t, err)

		assert.True(t, g.Solved(), "size %d", size)
		assert.Equal(t, Position{Row: size - 1, Column: size - 1}, g.EmptyCell())
		assert.Equal(t, size*size, g.Blank())
		assert.NoError(t, g.Validate())

		for row := range size {
			for column := range size {
				tile := g.Tile(row, column)
				assert.Equal(t, row*size+column+1, tile.ID)
				assert.Equal(t, tile.ID != g.Blank(), tile.Visible, "tile %d visibility", tile.ID)
			}
		}
	}
}

func TestSlideScenario(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	require.True(t, g.SlideLeft())
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 9, 8}}, g.IDs())
	assert.Equal(t, Position{Row: 2, Column: 1}, g.EmptyCell())
	assert.False(t, g.Solved())

	require.True(t, g.SlideRight())
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, g.IDs())
	assert.Equal(t, Position{Row: 2, Column: 2}, g.EmptyCell())
	assert.True(t, g.Solved())
}

func TestSlidesAtEdgesAreNoOps(t *testing.T) {
	tests := []struct {
		name  string
		ids   [][]int
		slide func(*Grid) bool
	}{
		// Blank in the last column cannot pull anything from its right
		{"left at right edge", [][]int{{1, 2}, {3, 4}}, (*Grid).SlideLeft},
		{"right at left edge", [][]int{{4, 1}, {2, 3}}, (*Grid).SlideRight},
		{"down at top edge", [][]int{{4, 1}, {2, 3}}, (*Grid).SlideDown},
		{"up at bottom edge", [][]int{{1, 2}, {3, 4}}, (*Grid).SlideUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.ids)
			before := g.IDs()
			empty := g.EmptyCell()

			assert.False(t, tt.slide(g))
			assert.Equal(t, before, g.IDs())
			assert.Equal(t, empty, g.EmptyCell())
		})
	}
}

func TestSlideDirections(t *testing.T) {
	// Blank in the centre of a 3x3 grid
	ids := [][]int{{1, 2, 3}, {4, 9, 5}, {6, 7, 8}}

	tests := []struct {
		move      Move
		wantEmpty Position
		wantMoved int // tile that ends up in the centre
	}{
		{MoveLeft, Position{1, 2}, 5},
		{MoveRight, Position{1, 0}, 4},
		{MoveDown, Position{0, 1}, 2},
		{MoveUp, Position{2, 1}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.move.String(), func(t *testing.T) {
			g := mustGrid(t, ids)
			require.True(t, g.Slide(tt.move))
			assert.Equal(t, tt.wantEmpty, g.EmptyCell())
			assert.Equal(t, tt.wantMoved, g.Tile(1, 1).ID)
			assert.Equal(t, g.Blank(), g.Tile(tt.wantEmpty.Row, tt.wantEmpty.Column).ID)
			assert.NoError(t, g.Validate())
		})
	}
}

func TestMoveReversibility(t *testing.T) {
	ids := [][]int{{1, 2, 3}, {4, 9, 5}, {6, 7, 8}}
	for _, m := range []Move{MoveLeft, MoveRight, MoveDown, MoveUp} {
		g := mustGrid(t, ids)
		require.True(t, g.Slide(m))
		require.True(t, g.Slide(m.Inverse()))
		assert.Equal(t, ids, g.IDs(), "move %s", m)
		assert.Equal(t, Position{1, 1}, g.EmptyCell())
	}
}

func TestSlideTileMatchesDirectSlide(t *testing.T) {
	ids := [][]int{{1, 2, 3}, {4, 9, 5}, {6, 7, 8}}
	neighbours := map[int]Move{5: MoveLeft, 4: MoveRight, 2: MoveDown, 7: MoveUp}

	for id, m := range neighbours {
		byID := mustGrid(t, ids)
		direct := mustGrid(t, ids)

		require.True(t, byID.SlideTile(id))
		require.True(t, direct.Slide(m))
		assert.Equal(t, direct.IDs(), byID.IDs(), "tile %d", id)
		assert.Equal(t, direct.EmptyCell(), byID.EmptyCell())
	}
}

func TestSlideTileIgnoresNonAdjacentIDs(t *testing.T) {
	ids := [][]int{{1, 2, 3}, {4, 9, 5}, {6, 7, 8}}
	for _, id := range []int{1, 3, 6, 8, 9, 0, -3, 10, 100} {
		g := mustGrid(t, ids)
		assert.False(t, g.SlideTile(id), "tile %d", id)
		assert.Equal(t, ids, g.IDs())
	}
}

func TestSolvedDetection(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	assert.True(t, g.Solved())

	// Any single swap away from identity is unsolved
	swapped := mustGrid(t, [][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 9}})
	assert.False(t, swapped.Solved())
}

func TestRevealBlank(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	assert.False(t, g.Tile(1, 1).Visible)

	g.RevealBlank()
	assert.True(t, g.Tile(1, 1).Visible)
}

func TestTileReturnsCopy(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)

	tile := g.Tile(0, 0)
	tile.ID = 42
	tile.Visible = false
	assert.Equal(t, Tile{ID: 1, Visible: true}, g.Tile(0, 0))
	assert.Equal(t, Tile{}, g.Tile(5, 5))
}

func TestFromIDsRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name string
		ids  [][]int
	}{
		{"too small", [][]int{{1}}},
		{"ragged", [][]int{{1, 2}, {3}}},
		{"duplicate", [][]int{{1, 1}, {3, 4}}},
		{"out of range", [][]int{{1, 2}, {3, 5}}},
		{"no blank", [][]int{{1, 2}, {3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromIDs(tt.ids)
			assert.Error(t, err)
		})
	}
}

func TestLocate(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 1}, {4, 2}})
	pos, ok := g.Locate(2)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 1, Column: 1}, pos)

	_, ok = g.Locate(9)
	assert.False(t, ok)
}
