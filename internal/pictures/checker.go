package pictures

import (
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

const checkerSquares = 8

func init() {
	registry.Register("checker", func() registry.Picture {
		return procedural{
			id:    "checker",
			title: "Checkerboard",
			sample: func(u, v float64) core.Color {
				x := int(u * checkerSquares)
				y := int(v * checkerSquares)
				if (x+y)%2 == 0 {
					return core.ColorBrightWhite
				}
				return core.ColorBlack
			},
		}
	})
}
