package render

import (
	"math"

	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/parameter/visual"
	"github.com/lixenwraith/dla/vmath"
)

// aggregate accumulates the particles that fall inside one character cell
type aggregate struct {
	bits     uint8
	count    int
	sumAge   float64
	sumDist  float64
	sumDens  float64
	sumCos   float64
	sumSin   float64
	maxAge   int
	occupied bool
}

// colorKey captures every input that changes the color of an unchanged cell
type colorKey struct {
	mode     parameter.ColorMode
	theme    visual.ThemeID
	byAttr   bool
	invert   bool
	minLevel float64
	budget   int
	radius   float64 // distance mode only
	maxN     int
	matrix   parameter.DotMatrix
}

// layoutKey captures everything that invalidates the aggregates
type layoutKey struct {
	generation uint64
	latW, latH int
	cols, rows int
	matrix     parameter.DotMatrix
}

// Canvas renders engine frames into sub-cell character grids
// Output is a pure function of (frame, visual); the aggregates and colors kept here are a cache
// advanced incrementally by the particles appended since the previous frame
type Canvas struct {
	cols, rows int

	layout    layoutKey
	hasLayout bool
	processed int
	cells     []aggregate
	dirty     []int
	isDirty   []bool

	key       colorKey
	hasKey    bool
	palette   *visual.Palette
	highlight []int // cells drawn in the highlight color last frame

	out *Grid
}

// NewCanvas creates a canvas of cols x rows characters
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{out: NewGrid(0, 0)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the character dimensions; the next Render rebuilds
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.hasLayout = false
}

// Size returns the character dimensions
func (c *Canvas) Size() (int, int) { return c.cols, c.rows }

// Render draws the frame with the visual settings and returns a grid owned by the caller
func (c *Canvas) Render(f engine.Frame, v parameter.Visual) *Grid {
	theme := v.Theme.Theme()

	layout := layoutKey{
		generation: f.Generation,
		latW:       f.Width, latH: f.Height,
		cols: c.cols, rows: c.rows,
		matrix: v.Matrix,
	}
	if !c.hasLayout || layout != c.layout || len(f.Particles) < c.processed {
		c.rebuild(layout)
	}

	c.accumulate(f, v.Matrix)

	key := colorKey{
		mode:     v.ColorMode,
		theme:    v.Theme,
		byAttr:   v.ColorByAttribute,
		invert:   v.Invert,
		minLevel: v.MinBrightness,
		budget:   f.Budget,
		maxN:     f.MaxNeighbors,
		matrix:   v.Matrix,
	}
	if v.ColorMode == parameter.ColorDistance {
		key.radius = f.GrowthRadius
	}
	if c.palette == nil || c.palette.Scheme != theme.Scheme {
		c.palette = visual.NewPalette(theme.Scheme)
	}

	hl := c.highlightCells(f, v)
	if !c.hasKey || key != c.key {
		c.key, c.hasKey = key, true
		for i := range c.cells {
			if c.cells[i].occupied {
				c.paint(i, f, v, &theme)
			}
		}
	} else {
		for _, i := range c.dirty {
			c.paint(i, f, v, &theme)
		}
		for _, i := range c.highlight {
			c.paint(i, f, v, &theme)
		}
		for _, i := range hl {
			c.paint(i, f, v, &theme)
		}
	}
	c.highlight = hl

	for _, i := range c.dirty {
		c.isDirty[i] = false
	}
	c.dirty = c.dirty[:0]

	c.out.Background = theme.Background
	return c.out.Clone()
}

// rebuild drops every aggregate for a new layout or generation
func (c *Canvas) rebuild(layout layoutKey) {
	c.layout, c.hasLayout = layout, true
	c.processed = 0
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]aggregate, n)
		c.isDirty = make([]bool, n)
	} else {
		c.cells = c.cells[:n]
		c.isDirty = c.isDirty[:n]
		clear(c.cells)
		clear(c.isDirty)
	}
	c.dirty = c.dirty[:0]
	c.highlight = c.highlight[:0]
	c.hasKey = false
	c.out.Resize(c.cols, c.rows)
}

// accumulate folds particles appended since the last frame into their cells
func (c *Canvas) accumulate(f engine.Frame, m parameter.DotMatrix) {
	if c.cols == 0 || c.rows == 0 || f.Width <= 0 || f.Height <= 0 {
		c.processed = len(f.Particles)
		return
	}
	dw, dh := m.Dots()
	dotsW, dotsH := c.cols*dw, c.rows*dh

	for _, p := range f.Particles[c.processed:] {
		dx, dy := p.X*dotsW/f.Width, p.Y*dotsH/f.Height
		if dx < 0 || dx >= dotsW || dy < 0 || dy >= dotsH {
			continue
		}
		idx := (dy/dh)*c.cols + dx/dw
		a := &c.cells[idx]
		a.bits |= dotBit(m, dx%dw, dy%dh)
		a.count++
		a.sumAge += float64(p.Age)
		a.sumDist += p.Dist
		a.sumDens += float64(p.Neighbors)
		a.sumCos += math.Cos(p.Angle)
		a.sumSin += math.Sin(p.Angle)
		a.maxAge = max(a.maxAge, p.Age)
		a.occupied = true
		if !c.isDirty[idx] {
			c.isDirty[idx] = true
			c.dirty = append(c.dirty, idx)
		}
	}
	c.processed = len(f.Particles)
}

// highlightCells lists the cells holding one of the most recent v.Highlight particles
func (c *Canvas) highlightCells(f engine.Frame, v parameter.Visual) []int {
	if v.Highlight <= 0 || c.cols == 0 || c.rows == 0 || f.Width <= 0 || f.Height <= 0 {
		return nil
	}
	dw, dh := v.Matrix.Dots()
	dotsW, dotsH := c.cols*dw, c.rows*dh
	start := max(len(f.Particles)-v.Highlight, 0)

	out := make([]int, 0, len(f.Particles)-start)
	for _, p := range f.Particles[start:] {
		dx, dy := p.X*dotsW/f.Width, p.Y*dotsH/f.Height
		if dx < 0 || dx >= dotsW || dy < 0 || dy >= dotsH {
			continue
		}
		out = append(out, (dy/dh)*c.cols+dx/dw)
	}
	return out
}

// paint resolves the glyph and color of one cell into the output cache
func (c *Canvas) paint(idx int, f engine.Frame, v parameter.Visual, theme *visual.Theme) {
	a := &c.cells[idx]
	if !a.occupied {
		c.out.Cells[idx] = blankCell
		return
	}
	c.out.Cells[idx] = Cell{Rune: Glyph(v.Matrix, a.bits), Fg: c.color(a, f, v, theme)}
}

// color maps a cell aggregate through the active color mode
func (c *Canvas) color(a *aggregate, f engine.Frame, v parameter.Visual, theme *visual.Theme) visual.RGB {
	if v.Highlight > 0 && a.maxAge > len(f.Particles)-v.Highlight {
		return theme.Highlight
	}
	if !v.ColorByAttribute {
		return theme.Particle
	}

	n := float64(a.count)
	var t float64
	switch v.ColorMode {
	case parameter.ColorDistance:
		if f.GrowthRadius > 0 {
			t = a.sumDist / n / f.GrowthRadius
		}
	case parameter.ColorDensity:
		if f.MaxNeighbors > 0 {
			t = a.sumDens / n / float64(f.MaxNeighbors)
		}
	case parameter.ColorDirection:
		// Circular mean so headings either side of zero do not average to pi
		t = vmath.NormalizeAngle(math.Atan2(a.sumSin, a.sumCos)) / vmath.Tau
	default:
		if f.Budget > 0 {
			t = a.sumAge / n / float64(f.Budget)
		}
	}
	return c.palette.Map(Level(t, v.Invert, v.MinBrightness))
}

// Level applies inversion then the brightness floor to a normalized attribute
func Level(t float64, invert bool, minBrightness float64) float64 {
	t = vmath.Clamp(t, 0, 1)
	if invert {
		t = 1 - t
	}
	return minBrightness + (1-minBrightness)*t
}
