package engine

import (
	"fmt"

	"github.com/lixenwraith/dla/parameter"
)

// Point is an integer lattice coordinate
type Point struct {
	X, Y int
}

// emptyCell marks an unoccupied slot in the dense grid
const emptyCell int32 = -1

// Fixed neighbor offset sets, dispatched by Neighborhood
var (
	vonNeumannOffsets = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	mooreOffsets = []Point{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}

	// Radius-2 square minus the center
	extendedOffsets = func() []Point {
		out := make([]Point, 0, 24)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				if dx != 0 || dy != 0 {
					out = append(out, Point{dx, dy})
				}
			}
		}
		return out
	}()
)

// Offsets returns the neighbor offsets of the shape
// The returned slice is shared and must not be modified
func Offsets(shape parameter.Neighborhood) []Point {
	switch shape {
	case parameter.VonNeumann:
		return vonNeumannOffsets
	case parameter.Extended:
		return extendedOffsets
	default:
		return mooreOffsets
	}
}

// Occupancy is a dense lattice mapping cells to particle-table keys
// 1D array: index = y*Width + x
type Occupancy struct {
	Width  int
	Height int
	cells  []int32
	count  int
}

// NewOccupancy creates an empty index covering width*height cells
func NewOccupancy(width, height int) *Occupancy {
	o := &Occupancy{
		Width:  width,
		Height: height,
		cells:  make([]int32, width*height),
	}
	o.Clear()
	return o
}

// InBounds reports whether (x, y) lies on the lattice
func (o *Occupancy) InBounds(x, y int) bool {
	return x >= 0 && x < o.Width && y >= 0 && y < o.Height
}

// IsOccupied returns true if (x, y) holds a particle. O(1), false out of bounds
func (o *Occupancy) IsOccupied(x, y int) bool {
	if !o.InBounds(x, y) {
		return false
	}
	return o.cells[y*o.Width+x] != emptyCell
}

// Get returns the particle key stored at (x, y)
func (o *Occupancy) Get(x, y int) (int, bool) {
	if !o.InBounds(x, y) {
		return 0, false
	}
	k := o.cells[y*o.Width+x]
	if k == emptyCell {
		return 0, false
	}
	return int(k), true
}

// Insert binds (x, y) to key
// Panics if the cell is out of bounds or already occupied, both are caller logic errors
func (o *Occupancy) Insert(x, y, key int) {
	if !o.InBounds(x, y) {
		panic(fmt.Sprintf("engine: occupancy insert out of bounds at (%d,%d) key=%d grid=%dx%d", x, y, key, o.Width, o.Height))
	}
	idx := y*o.Width + x
	if existing := o.cells[idx]; existing != emptyCell {
		panic(fmt.Sprintf("engine: occupancy collision at (%d,%d) key=%d existing=%d", x, y, key, existing))
	}
	o.cells[idx] = int32(key)
	o.count++
}

// Len returns the number of occupied cells
func (o *Occupancy) Len() int {
	return o.count
}

// Clear empties every cell without reallocating
func (o *Occupancy) Clear() {
	for i := range o.cells {
		o.cells[i] = emptyCell
	}
	o.count = 0
}

// NeighborCount counts occupied cells among the shape offsets around (x, y)
// With edgeSolid, offsets falling off the lattice count as occupied
func (o *Occupancy) NeighborCount(x, y int, shape parameter.Neighborhood, edgeSolid bool) int {
	n := 0
	for _, d := range Offsets(shape) {
		nx, ny := x+d.X, y+d.Y
		if !o.InBounds(nx, ny) {
			if edgeSolid {
				n++
			}
			continue
		}
		if o.cells[ny*o.Width+nx] != emptyCell {
			n++
		}
	}
	return n
}

// ReachesEdge reports whether any shape offset around (x, y) falls off the lattice
func (o *Occupancy) ReachesEdge(x, y int, shape parameter.Neighborhood) bool {
	for _, d := range Offsets(shape) {
		if !o.InBounds(x+d.X, y+d.Y) {
			return true
		}
	}
	return false
}

// Neighbors appends the occupied in-bounds offsets around (x, y) to dst
func (o *Occupancy) Neighbors(x, y int, shape parameter.Neighborhood, dst []Point) []Point {
	for _, d := range Offsets(shape) {
		nx, ny := x+d.X, y+d.Y
		if o.InBounds(nx, ny) && o.cells[ny*o.Width+nx] != emptyCell {
			dst = append(dst, d)
		}
	}
	return dst
}
