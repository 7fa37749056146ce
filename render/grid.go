package render

import (
	"strings"

	"github.com/lixenwraith/dla/parameter/visual"
)

// Cell is one terminal character of rendered output
type Cell struct {
	Rune rune
	Fg   visual.RGB
}

// blankCell is the empty character, drawn over the grid background
var blankCell = Cell{Rune: ' '}

// Grid is a row-major character grid with one foreground per cell
// The background is uniform, taken from the theme
type Grid struct {
	Cols       int
	Rows       int
	Cells      []Cell // 1D array: index = y*Cols + x
	Background visual.RGB
}

// NewGrid creates a blank grid with the specified dimensions
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
	g.Clear()
	return g
}

// Resize adjusts grid dimensions, reallocates only if capacity insufficient
func (g *Grid) Resize(cols, rows int) {
	size := cols * rows
	if cap(g.Cells) < size {
		g.Cells = make([]Cell, size)
	} else {
		g.Cells = g.Cells[:size]
	}
	g.Cols = cols
	g.Rows = rows
	g.Clear()
}

// Clear blanks all cells using exponential copy
func (g *Grid) Clear() {
	if len(g.Cells) == 0 {
		return
	}
	g.Cells[0] = blankCell
	for filled := 1; filled < len(g.Cells); filled *= 2 {
		copy(g.Cells[filled:], g.Cells[:filled])
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// At returns the cell at (x, y), blank out of bounds
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return blankCell
	}
	return g.Cells[y*g.Cols+x]
}

// Set writes a cell, ignored out of bounds
func (g *Grid) Set(x, y int, r rune, fg visual.RGB) {
	if !g.inBounds(x, y) {
		return
	}
	g.Cells[y*g.Cols+x] = Cell{Rune: r, Fg: fg}
}

// Clone returns a deep copy, the caller owns the result
func (g *Grid) Clone() *Grid {
	out := &Grid{Cols: g.Cols, Rows: g.Rows, Background: g.Background, Cells: make([]Cell, len(g.Cells))}
	copy(out.Cells, g.Cells)
	return out
}

// Equal compares dimensions, background and every cell
func (g *Grid) Equal(o *Grid) bool {
	if g.Cols != o.Cols || g.Rows != o.Rows || g.Background != o.Background || len(g.Cells) != len(o.Cells) {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// Text returns the runes row by row, newline separated
func (g *Grid) Text() string {
	var sb strings.Builder
	sb.Grow((g.Cols + 1) * g.Rows * 3)
	for y := 0; y < g.Rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.Cells[y*g.Cols : (y+1)*g.Cols] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Bytes encodes runes and foreground colors, the stable form handed to frame recorders
func (g *Grid) Bytes() []byte {
	out := make([]byte, 0, len(g.Cells)*7+6)
	out = append(out, byte(g.Cols>>8), byte(g.Cols), byte(g.Rows>>8), byte(g.Rows))
	out = append(out, g.Background.R, g.Background.G, g.Background.B)
	for _, c := range g.Cells {
		out = append(out, byte(c.Rune>>24), byte(c.Rune>>16), byte(c.Rune>>8), byte(c.Rune))
		out = append(out, c.Fg.R, c.Fg.G, c.Fg.B)
	}
	return out
}
