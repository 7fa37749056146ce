package engine

import (
	"math"

	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/vmath"
)

// Random is the single stream shared by spawn placement, walk sampling and stick draws
// *vmath.FastRand satisfies it; tests substitute fixed or scripted sources
type Random interface {
	Float64() float64
	Intn(n int) int
}

// WalkerState is the transition result of one walker step
type WalkerState uint8

const (
	Walking WalkerState = iota
	Stuck
	RemovedAbsorbed
	RemovedEscaped
	RemovedTimeout
)

func (s WalkerState) String() string {
	switch s {
	case Walking:
		return "walking"
	case Stuck:
		return "stuck"
	case RemovedAbsorbed:
		return "absorbed"
	case RemovedEscaped:
		return "escaped"
	case RemovedTimeout:
		return "timeout"
	}
	return "invalid"
}

// Terminal reports whether the walker instance is finished and must be replaced
func (s WalkerState) Terminal() bool {
	return s != Walking
}

// Walker is one in-flight particle slot
type Walker struct {
	Pos        vmath.Vec2
	Iterations int
	// SpawnDist is the distance from origin at spawn, used to widen the escape limit for edge spawns
	SpawnDist float64

	last         vmath.Vec2 // last displacement, source of the approach angle
	flipX, flipY bool       // bias negation requested by a bounce
	atEdge       bool       // last proposal crossed a stick edge

	// Adaptive multiplier cache
	scale       float64
	scaleIter   int
	scaleRadius float64
}

// Cell returns the lattice cell under the walker
func (w *Walker) Cell() Point {
	return Point{int(math.Floor(w.Pos.X)), int(math.Floor(w.Pos.Y))}
}

// ApproachAngle is the screen-space heading of the last displacement in [0, Tau)
func (w *Walker) ApproachAngle() float64 {
	return vmath.V2(w.last.X, -w.last.Y).Angle()
}

// cardinals in screen space, 0 = right, then up, left, down
var cardinals = [4]vmath.Vec2{{X: 1}, {Y: -1}, {X: -1}, {Y: 1}}

// stepEnv is the engine state a step reads
type stepEnv struct {
	occ    *Occupancy
	origin vmath.Vec2
	radius float64
}

// displacement draws the raw move for this step, before boundary handling
func (w *Walker) displacement(p *parameter.Params, env stepEnv, rng Random) vmath.Vec2 {
	bias := vmath.ScreenHeading(p.WalkAngle)
	if w.flipX {
		bias.X = -bias.X
	}
	if w.flipY {
		bias.Y = -bias.Y
	}
	w.flipX, w.flipY = false, false

	inward := env.origin.Sub(w.Pos).Normalize()

	var d vmath.Vec2
	if p.LatticeWalk {
		// Radial bias folds into the weights so moves stay on the lattice
		d = latticeStep(bias, p.WalkForce, inward, p.RadialBias, rng)
		if p.AdaptiveStep {
			d = d.Scale(math.Round(w.adaptiveScale(p, env)))
		}
		return d
	}

	u := vmath.FromAngle(rng.Float64() * vmath.Tau)
	d = u.Add(bias.Scale(2 * p.WalkForce))
	if d.MagSq() < 1e-12 {
		d = u
	}
	d = d.Normalize().Scale(p.WalkStep)
	d = d.Add(inward.Scale(p.RadialBias * p.WalkStep))

	if p.AdaptiveStep {
		d = d.Scale(w.adaptiveScale(p, env))
	}
	return d
}

// latticeStep picks one cardinal with weight max(0, 1 + 2f*cos(theta_i - theta_b) + 2r*(c_i . inward))
func latticeStep(bias vmath.Vec2, force float64, inward vmath.Vec2, radial float64, rng Random) vmath.Vec2 {
	var weights [4]float64
	total := 0.0
	for i, c := range cardinals {
		wt := 1 + 2*force*c.Dot(bias) + 2*radial*c.Dot(inward)
		if wt < 0 {
			wt = 0
		}
		weights[i] = wt
		total += wt
	}
	if total <= 0 {
		return cardinals[rng.Intn(4)]
	}
	r := rng.Float64() * total
	for i, wt := range weights {
		if r < wt {
			return cardinals[i]
		}
		r -= wt
	}
	return cardinals[3]
}

// adaptiveScale returns 1 + (factor-1)*clamp(gap/radius, 0, 1), refreshed every few iterations or on growth
func (w *Walker) adaptiveScale(p *parameter.Params, env stepEnv) float64 {
	stale := w.scale == 0 ||
		w.scaleRadius != env.radius ||
		w.Iterations-w.scaleIter >= parameter.AdaptiveRefreshInterval
	if stale {
		gap := vmath.Dist(w.Pos, env.origin) - env.radius
		ratio := 0.0
		if env.radius > 0 {
			ratio = vmath.Clamp(gap/env.radius, 0, 1)
		}
		w.scale = math.Min(1+(p.AdaptiveFactor-1)*ratio, p.AdaptiveFactor)
		if w.scale < 1 {
			w.scale = 1
		}
		w.scaleIter = w.Iterations
		w.scaleRadius = env.radius
	}
	return w.scale
}

// advance runs movement, boundary, timeout and escape checks
// It returns Walking when the walker should be handed to the sticking evaluator
func (w *Walker) advance(p *parameter.Params, env stepEnv, width, height int, rng Random) WalkerState {
	d := w.displacement(p, env, rng)
	w.last = d

	res := ApplyBoundary(p.Boundary, w.Pos, w.Pos.Add(d), width, height)
	if res.Outcome == Removed {
		w.atEdge = false
		return RemovedAbsorbed
	}
	w.flipX, w.flipY = res.BounceX, res.BounceY
	w.atEdge = res.AtEdge

	next := res.Pos
	cx, cy := int(math.Floor(next.X)), int(math.Floor(next.Y))
	if !env.occ.IsOccupied(cx, cy) {
		w.Pos = next
	}

	w.Iterations++
	if w.Iterations > p.MaxIterations {
		return RemovedTimeout
	}

	limit := p.EscapeMult * math.Max(env.radius, w.SpawnDist)
	if vmath.Dist(w.Pos, env.origin) > limit {
		return RemovedEscaped
	}
	return Walking
}
