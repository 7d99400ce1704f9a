package pictures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"checker", "rings", "sunset"} {
		require.True(t, registry.Exists(id), id)
		p, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.NotEmpty(t, p.Title())
	}
}

func TestBuiltinsSampleWholeSquare(t *testing.T) {
	for _, info := range registry.List() {
		p, err := registry.Create(info.ID)
		require.NoError(t, err)
		for _, uv := range [][2]float64{{0, 0}, {0.999, 0.999}, {0.5, 0.5}, {1, 1}, {-0.1, 1.2}} {
			assert.NotPanics(t, func() { p.ColorAt(uv[0], uv[1]) }, "%s at %v", info.ID, uv)
		}
	}
}

func TestCheckerAlternates(t *testing.T) {
	p, err := registry.Create("checker")
	require.NoError(t, err)
	step := 1.0 / checkerSquares
	assert.NotEqual(t, p.ColorAt(step/2, step/2), p.ColorAt(step*1.5, step/2))
	assert.Equal(t, p.ColorAt(step/2, step/2), p.ColorAt(step*1.5, step*1.5))
}

func TestRingsCentre(t *testing.T) {
	p, err := registry.Create("rings")
	require.NoError(t, err)
	assert.Equal(t, core.ColorBrightYellow, p.ColorAt(0.5, 0.5))
	assert.Equal(t, core.ColorGreen, p.ColorAt(0, 0))
}

func TestBandClamps(t *testing.T) {
	colors := []core.Color{core.ColorRed, core.ColorBlue}
	assert.Equal(t, core.ColorRed, band(-1, colors))
	assert.Equal(t, core.ColorBlue, band(1, colors))
	assert.Equal(t, core.ColorBlue, band(0.6, colors))
}
