package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleNeverSolved(t *testing.T) {
	for size := MinSize; size <= 6; size++ {
		for seed := int64(1); seed <= 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			// Zero iterations still has to leave an unsolved grid
			for _, iterations := range []int{0, 1, 10} {
				g, err := NewShuffled(size, iterations, rng)
				require.NoError(t, err)
				assert.False(t, g.Solved(), "size %d seed %d iterations %d", size, seed, iterations)
			}
		}
	}
}

func TestShuffleKeepsInvariants(t *testing.T) {
	for size := MinSize; size <= 10; size++ {
		rng := rand.New(rand.NewSource(int64(size)))
		g, err := NewShuffled(size, 10, rng)
		require.NoError(t, err)

		require.NoError(t, g.Validate(), "size %d", size)
		assert.True(t, g.Solvable(), "size %d", size)

		blanks := 0
		for row := range size {
			for column := range size {
				tile := g.Tile(row, column)
				if tile.ID == g.Blank() {
					blanks++
					assert.Equal(t, Position{Row: row, Column: column}, g.EmptyCell())
					assert.False(t, tile.Visible)
				}
			}
		}
		assert.Equal(t, 1, blanks)
	}
}

func TestShuffleTrailInverseRestoresSolved(t *testing.T) {
	for size := MinSize; size <= 5; size++ {
		g, err := New(size)
		require.NoError(t, err)

		trail := g.Shuffle(3, rand.New(rand.NewSource(99)))
		require.NotEmpty(t, trail)
		require.False(t, g.Solved())

		for i := len(trail) - 1; i >= 0; i-- {
			require.True(t, g.Slide(trail[i].Inverse()), "size %d step %d", size, i)
		}
		assert.True(t, g.Solved(), "size %d", size)
	}
}

func TestShuffleTrailOnlyLegalSlides(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)
	trail := g.Shuffle(5, rand.New(rand.NewSource(7)))

	// Replaying on a fresh grid must succeed at every step
	replay, err := New(4)
	require.NoError(t, err)
	for i, m := range trail {
		require.True(t, replay.Slide(m), "step %d (%s)", i, m)
	}
	assert.Equal(t, g.IDs(), replay.IDs())
	assert.Equal(t, g.EmptyCell(), replay.EmptyCell())
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a, err := NewShuffled(4, 10, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	b, err := NewShuffled(4, 10, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)

	assert.Equal(t, a.IDs(), b.IDs())
	assert.Equal(t, a.EmptyCell(), b.EmptyCell())
}

func TestSolvableParity(t *testing.T) {
	// Swapping two non-blank tiles of a solved grid is the classic unsolvable layout
	g := mustGrid(t, [][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 9}})
	assert.False(t, g.Solvable())

	solved := mustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	assert.True(t, solved.Solvable())
}

func TestNewShuffledRejectsInvalidSize(t *testing.T) {
	_, err := NewShuffled(1, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
