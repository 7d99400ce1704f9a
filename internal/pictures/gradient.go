package pictures

import (
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

var sunset = []core.Color{
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorBrightMagenta,
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorBrightYellow,
}

func init() {
	registry.Register("sunset", func() registry.Picture {
		return procedural{
			id:    "sunset",
			title: "Sunset",
			// Diagonal sweep, top-left to bottom-right
			sample: func(u, v float64) core.Color {
				return band((u+v)/2, sunset)
			},
		}
	})
}
