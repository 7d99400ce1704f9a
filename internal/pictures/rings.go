package pictures

import (
	"math"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

var target = []core.Color{
	core.ColorBrightYellow,
	core.ColorRed,
	core.ColorBrightBlue,
	core.ColorBlack,
	core.ColorWhite,
}

func init() {
	registry.Register("rings", func() registry.Picture {
		return procedural{
			id:    "rings",
			title: "Archery Target",
			sample: func(u, v float64) core.Color {
				// Distance from the centre, 1.0 at the middle of each edge
				d := math.Hypot(u-0.5, v-0.5) * 2
				if d >= 1 {
					return core.ColorGreen
				}
				return band(d, target)
			},
		}
	})
}
