package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/parameter/visual"
	"github.com/lixenwraith/dla/render"
)

// Rounded box drawing set
const (
	boxTL = '╭'
	boxTR = '╮'
	boxBL = '╰'
	boxBR = '╯'
	boxH  = '─'
	boxV  = '│'
)

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
)

// Region represents a rectangular area of a screen
// All coordinates are relative to the region's origin
type Region struct {
	s    *Screen
	X, Y int // Absolute position on screen
	W, H int // Region dimensions
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return Region{s: r.s, X: r.X + x, Y: r.Y + y, W: max(w, 0), H: max(h, 0)}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg visual.RGB, attr tcell.AttrMask) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.s.screen.SetContent(r.X+x, r.Y+y, ch, nil, r.s.Style(fg, bg).Attributes(attr))
}

// Fill paints every cell with the background color
func (r Region) Fill(bg visual.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', bg, bg, tcell.AttrNone)
		}
	}
}

// Text renders text at position, truncates at region edge, returns the column after the last rune
func (r Region) Text(x, y int, s string, fg, bg visual.RGB, attr tcell.AttrMask) int {
	col := x
	for _, ch := range s {
		if col >= r.W {
			break
		}
		r.Cell(col, y, ch, fg, bg, attr)
		col++
	}
	return col
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg visual.RGB, attr tcell.AttrMask) {
	r.Text(r.W-runeLen(s), y, s, fg, bg, attr)
}

// HLine draws horizontal line across region width at row y
func (r Region) HLine(y int, fg, bg visual.RGB) {
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, boxH, fg, bg, tcell.AttrNone)
	}
}

// Box draws a rounded border around region edge
func (r Region) Box(fg, bg visual.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	r.Cell(0, 0, boxTL, fg, bg, tcell.AttrNone)
	r.Cell(r.W-1, 0, boxTR, fg, bg, tcell.AttrNone)
	r.Cell(0, r.H-1, boxBL, fg, bg, tcell.AttrNone)
	r.Cell(r.W-1, r.H-1, boxBR, fg, bg, tcell.AttrNone)
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, boxH, fg, bg, tcell.AttrNone)
		r.Cell(x, r.H-1, boxH, fg, bg, tcell.AttrNone)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, boxV, fg, bg, tcell.AttrNone)
		r.Cell(r.W-1, y, boxV, fg, bg, tcell.AttrNone)
	}
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, fg, bg visual.RGB) Region {
	r.Box(fg, bg)
	if title != "" && r.W > 4 {
		title = truncate(title, r.W-4)
		r.Text((r.W-runeLen(title)-2)/2, 0, " "+title+" ", fg, bg, tcell.AttrBold)
	}
	return r.Inset(1)
}

// Progress draws a bar of width w filled to frac
func (r Region) Progress(x, y, w int, frac float64, fg, bg visual.RGB) {
	filled := int(frac*float64(w) + 0.5)
	filled = min(max(filled, 0), w)
	for i := 0; i < w; i++ {
		ch := progressEmpty
		if i < filled {
			ch = progressFull
		}
		r.Cell(x+i, y, ch, fg, bg, tcell.AttrNone)
	}
}

// Blit copies a rendered grid to the region origin, clipped to the region
func (r Region) Blit(g *render.Grid) {
	rows, cols := min(g.Rows, r.H), min(g.Cols, r.W)
	for y := 0; y < rows; y++ {
		row := g.Cells[y*g.Cols : y*g.Cols+cols]
		for x, c := range row {
			r.s.screen.SetContent(r.X+x, r.Y+y, c.Rune, nil, r.s.Style(c.Fg, g.Background))
		}
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// truncate cuts s to n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	if n <= 1 {
		return string([]rune(s)[:max(n, 0)])
	}
	return string([]rune(s)[:n-1]) + "…"
}
