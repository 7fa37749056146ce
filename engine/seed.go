package engine

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/vmath"
)

// Seed geometry limits, each further bounded by a fraction of the lattice
const (
	seedLineHalf      = 20
	seedCrossArm      = 10
	seedCircleRadius  = 15
	seedRingRadius    = 30
	seedRingThickness = 2
	seedBlockHalf     = 4
	seedNoiseRadius   = 20
	seedNoiseScale    = 0.15
	seedNoiseCutoff   = 0.2
	seedScatterCount  = 24
	seedScatterRadius = 30
	seedMultiCount    = 3
	seedStarRays      = 8
	seedStarLength    = 12
)

// seedBuilder accumulates unique in-bounds seed cells in insertion order
type seedBuilder struct {
	w, h  int
	seen  map[Point]struct{}
	cells []Point
}

func (b *seedBuilder) add(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	p := Point{x, y}
	if _, ok := b.seen[p]; ok {
		return
	}
	b.seen[p] = struct{}{}
	b.cells = append(b.cells, p)
}

// SeedCells returns the pre-attached cells of a pattern centered on origin
// Solid patterns start at the center; outline patterns (circle, ring, multipoint) leave it open
// The random stream is drawn only by noise and scatter
func SeedCells(pattern parameter.SeedPattern, width, height int, origin Point, rng Random) []Point {
	b := &seedBuilder{w: width, h: height, seen: make(map[Point]struct{})}
	cx, cy := origin.X, origin.Y
	b.add(cx, cy)

	switch pattern {
	case parameter.SeedLine:
		half := min(seedLineHalf, width/4)
		for dx := -half; dx <= half; dx++ {
			b.add(cx+dx, cy)
		}

	case parameter.SeedCross:
		arm := min(seedCrossArm, width/8, height/8)
		for d := -arm; d <= arm; d++ {
			b.add(cx+d, cy)
			b.add(cx, cy+d)
		}

	case parameter.SeedCircle:
		r := float64(min(seedCircleRadius, width/8, height/8))
		b.cells, b.seen = b.cells[:0], make(map[Point]struct{})
		for deg := 0; deg < 360; deg++ {
			a := vmath.Radians(float64(deg))
			b.add(cx+int(math.Round(r*math.Cos(a))), cy+int(math.Round(r*math.Sin(a))))
		}

	case parameter.SeedRing:
		r := min(seedRingRadius, width/4, height/4)
		b.cells, b.seen = b.cells[:0], make(map[Point]struct{})
		inner, outer := float64(r-seedRingThickness/2), float64(r+seedRingThickness/2)
		for dy := -r - seedRingThickness; dy <= r+seedRingThickness; dy++ {
			for dx := -r - seedRingThickness; dx <= r+seedRingThickness; dx++ {
				d := math.Hypot(float64(dx), float64(dy))
				if d >= inner && d < outer {
					b.add(cx+dx, cy+dy)
				}
			}
		}

	case parameter.SeedBlock:
		half := min(seedBlockHalf, width/16)
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				b.add(cx+dx, cy+dy)
			}
		}

	case parameter.SeedNoise:
		noise := perlin.NewPerlin(2, 2, 3, int64(rng.Intn(math.MaxInt32)))
		r := min(seedNoiseRadius, width/6, height/6)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy > r*r {
					continue
				}
				if noise.Noise2D(float64(dx)*seedNoiseScale, float64(dy)*seedNoiseScale) > seedNoiseCutoff {
					b.add(cx+dx, cy+dy)
				}
			}
		}

	case parameter.SeedScatter:
		r := float64(min(seedScatterRadius, width/4, height/4))
		for i := 0; i < seedScatterCount; i++ {
			a := rng.Float64() * vmath.Tau
			d := r * math.Sqrt(rng.Float64())
			b.add(cx+int(math.Round(d*math.Cos(a))), cy+int(math.Round(d*math.Sin(a))))
		}

	case parameter.SeedMultipoint:
		r := float64(min(width, height)) / 4
		b.cells, b.seen = b.cells[:0], make(map[Point]struct{})
		for i := 0; i < seedMultiCount; i++ {
			a := vmath.Tau*float64(i)/seedMultiCount - math.Pi/2
			b.add(cx+int(math.Round(r*math.Cos(a))), cy+int(math.Round(r*math.Sin(a))))
		}

	case parameter.SeedStarburst:
		length := min(seedStarLength, width/8, height/8)
		for i := 0; i < seedStarRays; i++ {
			a := vmath.Tau * float64(i) / seedStarRays
			for s := 1; s <= length; s++ {
				b.add(cx+int(math.Round(float64(s)*math.Cos(a))), cy+int(math.Round(float64(s)*math.Sin(a))))
			}
		}
	}

	return b.cells
}
