package engine

import (
	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/vmath"
)

// GradientScale is the distance over which stickiness_gradient contributes its full value
const GradientScale = 100.0

// StickDecision is the evaluator verdict for one walker position
type StickDecision struct {
	Neighbors   int
	Probability float64
	Stick       bool
	// Rejected is set when contact existed but did not attach (threshold or draw)
	Rejected bool
}

// StickProbability computes the attach probability for n occupied neighbors out of slots
// Result is clamped to [0,1]
func StickProbability(p *parameter.Params, n, slots int, dist float64) float64 {
	tipWeight := 1.0
	if slots > 0 {
		tipWeight = 1 - float64(n)/float64(slots)
	}
	prob := p.TipStickiness*tipWeight + p.SideStickiness*(1-tipWeight)
	prob *= p.Stickiness
	prob += p.StickinessGradient * (dist / GradientScale)
	return vmath.Clamp(prob, 0, 1)
}

// EvaluateStick decides whether a walker at cell attaches to the structure
// atEdge marks a walker whose last proposal crossed a stick edge; that edge counts as one contact
// The random stream is drawn exactly once per qualifying contact and never otherwise
func EvaluateStick(o *Occupancy, cell Point, dist float64, p *parameter.Params, edgeSolid, atEdge bool, rng Random) StickDecision {
	// Another walker attached here earlier in the tick; it must step off before it may stick
	if o.IsOccupied(cell.X, cell.Y) {
		return StickDecision{}
	}

	n := o.NeighborCount(cell.X, cell.Y, p.Neighborhood, edgeSolid)
	if atEdge && !(edgeSolid && o.ReachesEdge(cell.X, cell.Y, p.Neighborhood)) {
		n++
	}
	if n == 0 {
		return StickDecision{}
	}
	if n < p.MultiContact {
		return StickDecision{Neighbors: n, Rejected: true}
	}

	prob := StickProbability(p, n, p.Neighborhood.Slots(), dist)
	if rng.Float64() < prob {
		return StickDecision{Neighbors: n, Probability: prob, Stick: true}
	}
	return StickDecision{Neighbors: n, Probability: prob, Rejected: true}
}
