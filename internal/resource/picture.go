package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// ErrBadPicture is returned for picture files that cannot be used.
var ErrBadPicture = errors.New("resource: bad picture")

// pictureFile is the on-disk YAML form of a picture.
type pictureFile struct {
	Name    string            `yaml:"name"`
	Credits string            `yaml:"credits"`
	Palette map[string]string `yaml:"palette"`
	Rows    []string          `yaml:"rows"`
}

// FilePicture is a picture drawn as rows of palette characters.
// It implements registry.Picture.
type FilePicture struct {
	id      string
	title   string
	credits string
	width   int
	pixels  [][]core.Color
}

// ParsePicture decodes a YAML picture. The id is used when the file has no name.
func ParsePicture(id string, data []byte) (*FilePicture, error) {
	var f pictureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrBadPicture, id, err)
	}
	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("%w %s: no rows", ErrBadPicture, id)
	}

	palette := map[rune]core.Color{' ': core.ColorDefault}
	for key, name := range f.Palette {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("%w %s: palette key %q is not a single character", ErrBadPicture, id, key)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("%w %s: unknown color %q", ErrBadPicture, id, name)
		}
		palette[r] = c
	}

	p := &FilePicture{
		id:      id,
		title:   f.Name,
		credits: f.Credits,
		width:   utf8.RuneCountInString(f.Rows[0]),
		pixels:  make([][]core.Color, len(f.Rows)),
	}
	if p.title == "" {
		p.title = id
	}
	if p.width == 0 {
		return nil, fmt.Errorf("%w %s: empty row", ErrBadPicture, id)
	}

	for y, row := range f.Rows {
		if utf8.RuneCountInString(row) != p.width {
			return nil, fmt.Errorf("%w %s: row %d has %d columns, want %d",
				ErrBadPicture, id, y+1, utf8.RuneCountInString(row), p.width)
		}
		line := make([]core.Color, 0, p.width)
		for _, r := range row {
			c, ok := palette[r]
			if !ok {
				return nil, fmt.Errorf("%w %s: row %d uses %q which is not in the palette", ErrBadPicture, id, y+1, r)
			}
			line = append(line, c)
		}
		p.pixels[y] = line
	}

	return p, nil
}

// LoadPicture reads and decodes a picture file. The id is the file name
// without its extension.
func LoadPicture(path string) (*FilePicture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource: cannot read picture: %w", err)
	}
	return ParsePicture(pictureID(path), data)
}

func pictureID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (p *FilePicture) ID() string { return p.id }
func (p *FilePicture) Title() string { return p.title }
func (p *FilePicture) Credits() string { return p.credits }

// Bounds returns the picture size in characters.
func (p *FilePicture) Bounds() (width, height int) {
	return p.width, len(p.pixels)
}

// ColorAt samples the nearest pixel.
func (p *FilePicture) ColorAt(u, v float64) core.Color {
	x := core.Clamp(int(u*float64(p.width)), 0, p.width-1)
	y := core.Clamp(int(v*float64(len(p.pixels))), 0, len(p.pixels)-1)
	return p.pixels[y][x]
}
