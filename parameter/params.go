package parameter

import (
	"math"

	"github.com/lixenwraith/dla/parameter/visual"
)

// Parameter ranges consumed by the simulation core
const (
	ParticlesMin = 100
	ParticlesMax = 10000

	StickinessMin = 0.1
	StickinessMax = 1.0

	MultiContactMin = 1
	MultiContactMax = 4

	StickinessGradientMin = -0.5
	StickinessGradientMax = 0.5

	WalkStepMin = 0.5
	WalkStepMax = 5.0

	WalkForceMin = 0.0
	WalkForceMax = 0.5

	RadialBiasMin = -0.3
	RadialBiasMax = 0.3

	AdaptiveFactorMin = 1.0
	AdaptiveFactorMax = 10.0

	SpawnOffsetMin = 5.0
	SpawnOffsetMax = 50.0

	EscapeMultMin = 2.0
	EscapeMultMax = 6.0

	MinRadiusMin = 20.0
	MinRadiusMax = 100.0

	MaxIterationsMin = 1000
	MaxIterationsMax = 50000

	SpeedMin = 1
	SpeedMax = 100

	HighlightMax = 500
)

// Params is the externally owned parameter set
// The engine holds a pointer and re-reads fields every tick, so edits between ticks take effect immediately
type Params struct {
	Particles    int          `toml:"particles"`
	Speed        int          `toml:"speed"`
	SeedPattern  SeedPattern  `toml:"seed_pattern"`
	RandomSeed   uint64       `toml:"random_seed"` // 0 draws a fresh seed on every reset
	Neighborhood Neighborhood `toml:"neighborhood"`

	Stickiness         float64 `toml:"stickiness"`
	MultiContact       int     `toml:"multi_contact"`
	TipStickiness      float64 `toml:"tip_stickiness"`
	SideStickiness     float64 `toml:"side_stickiness"`
	StickinessGradient float64 `toml:"stickiness_gradient"`

	WalkStep       float64 `toml:"walk_step"`
	WalkAngle      float64 `toml:"walk_angle"` // degrees, 0 = right, 90 = up
	WalkForce      float64 `toml:"walk_force"`
	RadialBias     float64 `toml:"radial_bias"`
	AdaptiveStep   bool    `toml:"adaptive_step"`
	AdaptiveFactor float64 `toml:"adaptive_factor"`
	LatticeWalk    bool    `toml:"lattice_walk"`

	SpawnMode     SpawnMode `toml:"spawn_mode"`
	Boundary      Boundary  `toml:"boundary"`
	SpawnOffset   float64   `toml:"spawn_offset"`
	EscapeMult    float64   `toml:"escape_mult"`
	MinRadius     float64   `toml:"min_radius"`
	MaxIterations int       `toml:"max_iterations"`
}

// Default returns the stock parameter set
func Default() *Params {
	return &Params{
		Particles:    5000,
		Speed:        20,
		SeedPattern:  SeedPoint,
		Neighborhood: Moore,

		Stickiness:     1.0,
		MultiContact:   1,
		TipStickiness:  1.0,
		SideStickiness: 1.0,

		WalkStep:       2.0,
		WalkAngle:      90,
		AdaptiveFactor: 3.0,

		SpawnMode:     SpawnCircle,
		Boundary:      BoundaryClamp,
		SpawnOffset:   10,
		EscapeMult:    2.0,
		MinRadius:     50,
		MaxIterations: 10000,
	}
}

// Clamp forces every field into its documented range
func (p *Params) Clamp() {
	p.Particles = clampInt(p.Particles, ParticlesMin, ParticlesMax)
	p.Speed = clampInt(p.Speed, SpeedMin, SpeedMax)
	if p.SeedPattern >= seedPatternCount {
		p.SeedPattern = SeedPoint
	}
	if p.Neighborhood >= neighborhoodCount {
		p.Neighborhood = Moore
	}

	p.Stickiness = clamp(p.Stickiness, StickinessMin, StickinessMax)
	p.MultiContact = clampInt(p.MultiContact, MultiContactMin, MultiContactMax)
	p.TipStickiness = clamp(p.TipStickiness, StickinessMin, StickinessMax)
	p.SideStickiness = clamp(p.SideStickiness, StickinessMin, StickinessMax)
	p.StickinessGradient = clamp(p.StickinessGradient, StickinessGradientMin, StickinessGradientMax)

	p.WalkStep = clamp(p.WalkStep, WalkStepMin, WalkStepMax)
	p.WalkAngle = wrapDegrees(p.WalkAngle)
	p.WalkForce = clamp(p.WalkForce, WalkForceMin, WalkForceMax)
	p.RadialBias = clamp(p.RadialBias, RadialBiasMin, RadialBiasMax)
	p.AdaptiveFactor = clamp(p.AdaptiveFactor, AdaptiveFactorMin, AdaptiveFactorMax)

	if p.SpawnMode >= spawnModeCount {
		p.SpawnMode = SpawnCircle
	}
	if p.Boundary >= boundaryCount {
		p.Boundary = BoundaryClamp
	}
	p.SpawnOffset = clamp(p.SpawnOffset, SpawnOffsetMin, SpawnOffsetMax)
	p.EscapeMult = clamp(p.EscapeMult, EscapeMultMin, EscapeMultMax)
	p.MinRadius = clamp(p.MinRadius, MinRadiusMin, MinRadiusMax)
	p.MaxIterations = clampInt(p.MaxIterations, MaxIterationsMin, MaxIterationsMax)
}

// Visual holds the renderer-facing settings, independent of simulation state
type Visual struct {
	ColorMode        ColorMode      `toml:"color_mode"`
	Theme            visual.ThemeID `toml:"theme"`
	ColorByAttribute bool           `toml:"color_by_attribute"` // false paints every dot in the theme particle color
	Invert           bool           `toml:"invert"`
	Highlight        int            `toml:"highlight"` // most recent particles drawn in the highlight color
	MinBrightness    float64        `toml:"min_brightness"`
	Matrix           DotMatrix      `toml:"matrix"`
}

// DefaultVisual returns the stock visual settings
func DefaultVisual() Visual {
	return Visual{
		ColorMode:        ColorAge,
		Theme:            visual.ThemeDefault,
		ColorByAttribute: true,
		Highlight:        0,
		MinBrightness:    0.2,
		Matrix:           MatrixBraille,
	}
}

// Clamp forces visual fields into range
func (v *Visual) Clamp() {
	if v.ColorMode >= colorModeCount {
		v.ColorMode = ColorAge
	}
	if v.Matrix >= dotMatrixCount {
		v.Matrix = MatrixBraille
	}
	v.Highlight = clampInt(v.Highlight, 0, HighlightMax)
	v.MinBrightness = clamp(v.MinBrightness, 0, 1)
	if !v.Theme.Valid() {
		v.Theme = visual.ThemeDefault
	}
}

func clamp(v, lo, hi float64) float64 {
	// NaN compares false both ways, send it to the floor
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapDegrees(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}
