package parameter

import (
	"fmt"
	"strings"
)

// Closed policy sets. Every set is small and fixed, dispatched through a single switch per policy

// Neighborhood selects the neighbor offsets checked for contact
type Neighborhood uint8

const (
	VonNeumann Neighborhood = iota // 4 cardinal cells
	Moore                          // 8 surrounding cells
	Extended                       // 24 cells, radius 2
	neighborhoodCount
)

var neighborhoodNames = [...]string{"vonneumann", "moore", "extended"}

// Slots returns the number of neighbor offsets in the shape
func (n Neighborhood) Slots() int {
	switch n {
	case VonNeumann:
		return 4
	case Extended:
		return 24
	default:
		return 8
	}
}

// Boundary selects what happens when a walker leaves the plane
type Boundary uint8

const (
	BoundaryClamp Boundary = iota
	BoundaryWrap
	BoundaryBounce
	BoundaryStick
	BoundaryAbsorb
	boundaryCount
)

var boundaryNames = [...]string{"clamp", "wrap", "bounce", "stick", "absorb"}

// SpawnMode selects where new walkers originate
type SpawnMode uint8

const (
	SpawnCircle SpawnMode = iota
	SpawnEdges
	SpawnCorners
	SpawnRandom
	SpawnTop
	SpawnBottom
	SpawnLeft
	SpawnRight
	spawnModeCount
)

var spawnModeNames = [...]string{"circle", "edges", "corners", "random", "top", "bottom", "left", "right"}

// SeedPattern is the initial structure geometry, independent of the RNG seed
type SeedPattern uint8

const (
	SeedPoint SeedPattern = iota
	SeedLine
	SeedCross
	SeedCircle
	SeedRing
	SeedBlock
	SeedNoise
	SeedScatter
	SeedMultipoint
	SeedStarburst
	seedPatternCount
)

var seedPatternNames = [...]string{
	"point", "line", "cross", "circle", "ring", "block", "noise", "scatter", "multipoint", "starburst",
}

// ColorMode selects the particle attribute mapped through the theme gradient
type ColorMode uint8

const (
	ColorAge ColorMode = iota
	ColorDistance
	ColorDensity
	ColorDirection
	colorModeCount
)

var colorModeNames = [...]string{"age", "distance", "density", "direction"}

// DotMatrix selects the sub-cell subdivision of one terminal character
type DotMatrix uint8

const (
	MatrixBraille   DotMatrix = iota // 2x4
	MatrixQuadrant                   // 2x2
	MatrixHalfBlock                  // 1x2
	dotMatrixCount
)

var dotMatrixNames = [...]string{"braille", "quadrant", "halfblock"}

// Dots returns the sub-cell columns and rows of one character
func (m DotMatrix) Dots() (w, h int) {
	switch m {
	case MatrixQuadrant:
		return 2, 2
	case MatrixHalfBlock:
		return 1, 2
	default:
		return 2, 4
	}
}

func (n Neighborhood) String() string { return nameOf(neighborhoodNames[:], n) }
func (b Boundary) String() string     { return nameOf(boundaryNames[:], b) }
func (s SpawnMode) String() string    { return nameOf(spawnModeNames[:], s) }
func (s SeedPattern) String() string  { return nameOf(seedPatternNames[:], s) }
func (c ColorMode) String() string    { return nameOf(colorModeNames[:], c) }
func (m DotMatrix) String() string    { return nameOf(dotMatrixNames[:], m) }

func (n Neighborhood) Next() Neighborhood { return cycle(n, neighborhoodCount, 1) }
func (n Neighborhood) Prev() Neighborhood { return cycle(n, neighborhoodCount, -1) }
func (b Boundary) Next() Boundary         { return cycle(b, boundaryCount, 1) }
func (b Boundary) Prev() Boundary         { return cycle(b, boundaryCount, -1) }
func (s SpawnMode) Next() SpawnMode       { return cycle(s, spawnModeCount, 1) }
func (s SpawnMode) Prev() SpawnMode       { return cycle(s, spawnModeCount, -1) }
func (s SeedPattern) Next() SeedPattern   { return cycle(s, seedPatternCount, 1) }
func (s SeedPattern) Prev() SeedPattern   { return cycle(s, seedPatternCount, -1) }
func (c ColorMode) Next() ColorMode       { return cycle(c, colorModeCount, 1) }
func (c ColorMode) Prev() ColorMode       { return cycle(c, colorModeCount, -1) }
func (m DotMatrix) Next() DotMatrix       { return cycle(m, dotMatrixCount, 1) }
func (m DotMatrix) Prev() DotMatrix       { return cycle(m, dotMatrixCount, -1) }

// MarshalText and UnmarshalText let the enums travel as names through TOML and flags

func (n Neighborhood) MarshalText() ([]byte, error) { return []byte(n.String()), nil }
func (b Boundary) MarshalText() ([]byte, error)     { return []byte(b.String()), nil }
func (s SpawnMode) MarshalText() ([]byte, error)    { return []byte(s.String()), nil }
func (s SeedPattern) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (c ColorMode) MarshalText() ([]byte, error)    { return []byte(c.String()), nil }
func (m DotMatrix) MarshalText() ([]byte, error)    { return []byte(m.String()), nil }

func (n *Neighborhood) UnmarshalText(b []byte) (err error) {
	*n, err = ParseNeighborhood(string(b))
	return err
}

func (b *Boundary) UnmarshalText(text []byte) (err error) {
	*b, err = ParseBoundary(string(text))
	return err
}

func (s *SpawnMode) UnmarshalText(b []byte) (err error) {
	*s, err = ParseSpawnMode(string(b))
	return err
}

func (s *SeedPattern) UnmarshalText(b []byte) (err error) {
	*s, err = ParseSeedPattern(string(b))
	return err
}

func (c *ColorMode) UnmarshalText(b []byte) (err error) {
	*c, err = ParseColorMode(string(b))
	return err
}

func (m *DotMatrix) UnmarshalText(b []byte) (err error) {
	*m, err = ParseDotMatrix(string(b))
	return err
}

// ParseNeighborhood accepts names and short forms ("vn", "von-neumann", "Moore", "ext")
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch normalizeName(s) {
	case "vn", "vonneumann", "neumann", "4":
		return VonNeumann, nil
	case "moore", "8":
		return Moore, nil
	case "ext", "extended", "24":
		return Extended, nil
	}
	return Moore, fmt.Errorf("unknown neighborhood %q", s)
}

func ParseBoundary(s string) (Boundary, error) {
	return parseName(boundaryNames[:], s, "boundary", BoundaryClamp)
}

func ParseSpawnMode(s string) (SpawnMode, error) {
	return parseName(spawnModeNames[:], s, "spawn mode", SpawnCircle)
}

func ParseSeedPattern(s string) (SeedPattern, error) {
	return parseName(seedPatternNames[:], s, "seed pattern", SeedPoint)
}

func ParseColorMode(s string) (ColorMode, error) {
	return parseName(colorModeNames[:], s, "color mode", ColorAge)
}

func ParseDotMatrix(s string) (DotMatrix, error) {
	return parseName(dotMatrixNames[:], s, "dot matrix", MatrixBraille)
}

func normalizeName(s string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func parseName[T ~uint8](names []string, s, kind string, fallback T) (T, error) {
	key := normalizeName(s)
	for i, name := range names {
		if name == key {
			return T(i), nil
		}
	}
	return fallback, fmt.Errorf("unknown %s %q", kind, s)
}

func nameOf[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("invalid(%d)", uint8(v))
}

func cycle[T ~uint8](v, count T, delta int) T {
	n := int(count)
	return T(((int(v)+delta)%n + n) % n)
}
