// Package pictures holds the built-in procedural pictures. Each picture
// registers itself with the registry on import, so the content library has
// something to show even without a picture directory.
package pictures

import (
	"github.com/vovakirdan/tui-slide/internal/core"
)

// band maps t in [0, 1) onto one of the colors, clamping out-of-range input.
func band(t float64, colors []core.Color) core.Color {
	i := int(t * float64(len(colors)))
	return colors[core.Clamp(i, 0, len(colors)-1)]
}

// procedural is a picture defined by a sampling function.
type procedural struct {
	id      string
	title   string
	credits string
	sample  func(u, v float64) core.Color
}

func (p procedural) ID() string { return p.id }
func (p procedural) Title() string { return p.title }
func (p procedural) Credits() string { return p.credits }

func (p procedural) ColorAt(u, v float64) core.Color {
	return p.sample(u, v)
}
