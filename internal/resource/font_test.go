package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFontRendersDigits(t *testing.T) {
	f, err := DefaultFont()
	require.NoError(t, err)
	assert.Equal(t, 3, f.Height())

	lines, ok := f.Render("15")
	require.True(t, ok)
	require.Len(t, lines, 3)
	assert.Equal(t, "▀█  █▀▀", lines[0])
	assert.Equal(t, 7, f.Width("15"))

	for _, d := range "0123456789" {
		assert.Equal(t, 3, f.Width(string(d)), "digit %c", d)
	}
}

func TestFontMissingGlyph(t *testing.T) {
	f, err := DefaultFont()
	require.NoError(t, err)

	_, ok := f.Render("1a")
	assert.False(t, ok)
	assert.Equal(t, -1, f.Width("x"))
}

func TestParseFontErrors(t *testing.T) {
	for name, data := range map[string]string{
		"no height":  "glyphs: {}\n",
		"row count":  "height: 2\nglyphs: {\"1\": [\"#\"]}\n",
		"ragged":     "height: 2\nglyphs: {\"1\": [\"#\", \"##\"]}\n",
		"bad key":    "height: 1\nglyphs: {\"12\": [\"#\"]}\n",
		"not a font": "height: [\n",
	} {
		_, err := ParseFont([]byte(data))
		assert.ErrorIs(t, err, ErrBadFont, name)
	}
}
