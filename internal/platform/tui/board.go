package tui

import (
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/controller"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/resource"
)

// Rows reserved above and below the board.
const (
	headerRows = 1
	statusRows = 1
)

// boardLayout is the board geometry for one screen size and grid size.
type boardLayout struct {
	n            int
	tiles        core.Rect // Tile area, inside the frame
	frame        core.Rect
	tileW, tileH int
	mirror       bool // Columns run right to left
}

// layoutBoard fits an n×n board into the screen, keeping tiles roughly
// square on a terminal where a cell is twice as tall as it is wide.
// Returns false if not even one cell per tile fits.
func layoutBoard(screen core.Rect, n int) (boardLayout, bool) {
	if n <= 0 {
		return boardLayout{}, false
	}
	availW := screen.W - 2
	availH := screen.H - headerRows - statusRows - 2

	tileW := availW / n
	tileH := availH / n
	if tileW > 2*tileH {
		tileW = 2 * tileH
	} else if tileH > (tileW+1)/2 {
		tileH = (tileW + 1) / 2
	}
	if tileW < 1 || tileH < 1 {
		return boardLayout{}, false
	}

	w, h := tileW*n, tileH*n
	x := screen.X + 1 + (availW-w)/2
	y := screen.Y + headerRows + 1 + (availH-h)/2
	tiles := core.NewRect(x, y, w, h)

	return boardLayout{
		n:     n,
		tiles: tiles,
		frame: core.NewRect(x-1, y-1, w+2, h+2),
		tileW: tileW,
		tileH: tileH,
	}, true
}

// facing returns the layout as seen from side. The back of the tiles is
// viewed from behind, so its columns are mirrored.
func (l boardLayout) facing(side controller.Side) boardLayout {
	l.mirror = side == controller.SideBack
	return l
}

// screenColumn maps a grid column to the column it is drawn in, and back.
func (l boardLayout) screenColumn(column int) int {
	if l.mirror {
		return l.n - 1 - column
	}
	return column
}

// tileRect returns the screen area of the cell at row, column.
func (l boardLayout) tileRect(row, column int) core.Rect {
	x := l.tiles.X + l.screenColumn(column)*l.tileW
	return core.NewRect(x, l.tiles.Y+row*l.tileH, l.tileW, l.tileH)
}

// pick returns the id of the tile under screen position (x, y).
func (l boardLayout) pick(grid controller.GridView, x, y int) (int, bool) {
	row, column, ok := l.tiles.Cell(x, y, l.n)
	if !ok {
		return 0, false
	}
	return grid.Tile(row, l.screenColumn(column)).ID, true
}

// boardPainter draws a grid into a screen.
type boardPainter struct {
	theme   config.Theme
	font    *resource.Font   // nil draws plain numbers
	picture registry.Picture // nil draws the front side on the back too
	side    controller.Side
	solved  bool
}

func (p boardPainter) draw(s *core.Screen, l boardLayout, grid controller.GridView) {
	l = l.facing(p.side)
	frame := p.theme.Frame
	if p.solved {
		frame = p.theme.Solved
	}
	s.DrawBox(l.frame, frame)

	for row := range l.n {
		for column := range l.n {
			tile := grid.Tile(row, column)
			if !tile.Visible {
				continue
			}
			r := l.tileRect(row, column)
			if p.side == controller.SideBack && p.picture != nil {
				p.drawPicture(s, l, r, tile.ID)
			} else {
				p.drawFace(s, r, tile.ID)
			}
		}
	}
}

// drawFace draws the numbered front of a tile.
func (p boardPainter) drawFace(s *core.Screen, r core.Rect, id int) {
	// Leave a gap to the right and below once tiles are big enough
	if r.W >= 3 && r.H >= 2 {
		r = core.NewRect(r.X, r.Y, r.W-1, r.H-1)
	}
	bg := p.theme.Tile
	if p.solved {
		bg = p.theme.Solved
	}
	s.FillRect(r, core.Cell{Rune: ' ', Bg: bg})

	label := strconv.Itoa(id)
	if p.font != nil && p.font.Height() <= r.H && p.font.Width(label) <= r.W {
		lines, _ := p.font.Render(label)
		top := r.Y + (r.H-len(lines))/2
		for i, line := range lines {
			x := r.X + (r.W-utf8.RuneCountInString(line))/2
			s.DrawTextOn(x, top+i, line, p.theme.TileText, bg)
		}
		return
	}

	if len(label) > r.W {
		label = label[len(label)-r.W:]
	}
	s.DrawTextOn(r.X+(r.W-len(label))/2, r.Y+(r.H-1)/2, label, p.theme.TileText, bg)
}

// drawPicture fills a tile with its share of the picture. The share is
// taken from where the tile's home cell is drawn, so the picture is whole
// when solved.
func (p boardPainter) drawPicture(s *core.Screen, l boardLayout, r core.Rect, id int) {
	homeRow := (id - 1) / l.n
	homeColumn := l.screenColumn((id - 1) % l.n)
	totalW := float64(l.n * l.tileW)
	totalH := float64(l.n * l.tileH)

	for dy := range r.H {
		v := (float64(homeRow*l.tileH+dy) + 0.5) / totalH
		for dx := range r.W {
			u := (float64(homeColumn*l.tileW+dx) + 0.5) / totalW
			s.SetCell(r.X+dx, r.Y+dy, core.Cell{Rune: ' ', Bg: p.picture.ColorAt(u, v)})
		}
	}
}
