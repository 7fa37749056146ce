package engine

import (
	"math"

	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/vmath"
)

// SpawnConfig is everything spawn placement depends on besides the random stream
type SpawnConfig struct {
	Mode      parameter.SpawnMode
	Radius    float64 // current growth radius
	Offset    float64
	MinRadius float64
	Origin    vmath.Vec2
	Width     int
	Height    int
}

// SpawnRadius is the circle-mode release distance
func (c SpawnConfig) SpawnRadius() float64 {
	return math.Max(c.Radius+c.Offset, c.MinRadius)
}

// SpawnPosition draws one candidate position for the mode, always inside the plane
// It does not consult occupancy, see Engine.spawn for the rejection loop
func SpawnPosition(c SpawnConfig, rng Random) vmath.Vec2 {
	w, h := float64(c.Width), float64(c.Height)
	maxX, maxY := vmath.Below(w), vmath.Below(h)

	switch c.Mode {
	case parameter.SpawnEdges:
		return edgePosition(rng.Intn(4), w, h, rng)

	case parameter.SpawnCorners:
		// Jitter inward from the corner by up to the spawn offset
		jx := rng.Float64() * math.Min(c.Offset, w/2)
		jy := rng.Float64() * math.Min(c.Offset, h/2)
		switch rng.Intn(4) {
		case 0:
			return vmath.V2(jx, jy)
		case 1:
			return vmath.V2(maxX-jx, jy)
		case 2:
			return vmath.V2(jx, maxY-jy)
		default:
			return vmath.V2(maxX-jx, maxY-jy)
		}

	case parameter.SpawnRandom:
		// Uniform over the plane outside the release circle, falls back to the circle when the plane is exhausted
		r := c.SpawnRadius()
		for i := 0; i < parameter.SpawnAttempts; i++ {
			p := vmath.V2(rng.Float64()*maxX, rng.Float64()*maxY)
			if vmath.Dist(p, c.Origin) >= r {
				return p
			}
		}
		return circlePosition(c, rng)

	case parameter.SpawnTop:
		return edgePosition(0, w, h, rng)
	case parameter.SpawnRight:
		return edgePosition(1, w, h, rng)
	case parameter.SpawnBottom:
		return edgePosition(2, w, h, rng)
	case parameter.SpawnLeft:
		return edgePosition(3, w, h, rng)

	default:
		return circlePosition(c, rng)
	}
}

func circlePosition(c SpawnConfig, rng Random) vmath.Vec2 {
	p := c.Origin.Add(vmath.FromAngle(rng.Float64() * vmath.Tau).Scale(c.SpawnRadius()))
	return vmath.V2(
		vmath.Clamp(p.X, 0, vmath.Below(float64(c.Width))),
		vmath.Clamp(p.Y, 0, vmath.Below(float64(c.Height))),
	)
}

// edgePosition places a point on edge 0 top, 1 right, 2 bottom, 3 left
func edgePosition(edge int, w, h float64, rng Random) vmath.Vec2 {
	maxX, maxY := vmath.Below(w), vmath.Below(h)
	switch edge {
	case 0:
		return vmath.V2(rng.Float64()*maxX, 0)
	case 1:
		return vmath.V2(maxX, rng.Float64()*maxY)
	case 2:
		return vmath.V2(rng.Float64()*maxX, maxY)
	default:
		return vmath.V2(0, rng.Float64()*maxY)
	}
}

// spawnWalker returns a fresh walker on an unoccupied cell
// Candidates on occupied cells are redrawn; a dense plane falls back to a linear probe for a free cell
func spawnWalker(c SpawnConfig, occ *Occupancy, rng Random) Walker {
	for i := 0; i < parameter.SpawnAttempts; i++ {
		p := SpawnPosition(c, rng)
		if !occ.IsOccupied(int(math.Floor(p.X)), int(math.Floor(p.Y))) {
			return Walker{Pos: p, SpawnDist: vmath.Dist(p, c.Origin)}
		}
	}

	total := occ.Width * occ.Height
	start := rng.Intn(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		x, y := idx%occ.Width, idx/occ.Width
		if !occ.IsOccupied(x, y) {
			p := vmath.V2(float64(x)+0.5, float64(y)+0.5)
			return Walker{Pos: p, SpawnDist: vmath.Dist(p, c.Origin)}
		}
	}
	panic("engine: spawn on a fully occupied lattice")
}
