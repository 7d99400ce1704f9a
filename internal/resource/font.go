package resource

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed fonts/digits.yaml
var defaultFontYAML []byte

// ErrBadFont is returned for font files that cannot be used.
var ErrBadFont = errors.New("resource: bad font")

type fontFile struct {
	Height int                 `yaml:"height"`
	Glyphs map[string][]string `yaml:"glyphs"`
}

// Font is a fixed-height block font used for tile numbers.
type Font struct {
	height int
	glyphs map[rune][]string
}

// DefaultFont parses the embedded digit font.
func DefaultFont() (*Font, error) {
	return ParseFont(defaultFontYAML)
}

// ParseFont decodes a YAML font. Every glyph must have exactly height rows
// of equal width.
func ParseFont(data []byte) (*Font, error) {
	var f fontFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFont, err)
	}
	if f.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be positive", ErrBadFont)
	}

	font := &Font{height: f.Height, glyphs: make(map[rune][]string, len(f.Glyphs))}
	for key, rows := range f.Glyphs {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("%w: glyph key %q is not a single character", ErrBadFont, key)
		}
		if len(rows) != f.Height {
			return nil, fmt.Errorf("%w: glyph %q has %d rows, want %d", ErrBadFont, key, len(rows), f.Height)
		}
		w := utf8.RuneCountInString(rows[0])
		for _, row := range rows {
			if utf8.RuneCountInString(row) != w {
				return nil, fmt.Errorf("%w: glyph %q is ragged", ErrBadFont, key)
			}
		}
		font.glyphs[r] = rows
	}
	return font, nil
}

// Height returns the glyph height in rows.
func (f *Font) Height() int {
	return f.height
}

// Render lays out text with one blank column between glyphs.
// Returns false if a character has no glyph.
func (f *Font) Render(text string) ([]string, bool) {
	lines := make([]strings.Builder, f.height)
	first := true
	for _, r := range text {
		g, ok := f.glyphs[r]
		if !ok {
			return nil, false
		}
		for i := range lines {
			if !first {
				lines[i].WriteByte(' ')
			}
			lines[i].WriteString(g[i])
		}
		first = false
	}

	out := make([]string, f.height)
	for i := range lines {
		out[i] = lines[i].String()
	}
	return out, true
}

// Width returns the rendered width of text in columns, or -1 if a
// character has no glyph.
func (f *Font) Width(text string) int {
	lines, ok := f.Render(text)
	if !ok {
		return -1
	}
	return utf8.RuneCountInString(lines[0])
}
