package engine

import (
	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/vmath"
)

// Outcome is the boundary verdict on a proposed move
type Outcome uint8

const (
	Continue Outcome = iota
	Removed
)

// BoundaryResult carries the transformed position and the side effects a policy requests
type BoundaryResult struct {
	Pos     vmath.Vec2
	Outcome Outcome
	// BounceX and BounceY flag axes reflected this step; the walker negates its bias on them next step
	BounceX, BounceY bool
	// AtEdge is set by the stick policy when the proposal left the plane
	AtEdge bool
}

// ApplyBoundary transforms a proposed position against the [0,width) x [0,height) plane
// Pure: identical inputs always give identical results
func ApplyBoundary(policy parameter.Boundary, old, proposed vmath.Vec2, width, height int) BoundaryResult {
	w, h := float64(width), float64(height)
	inside := proposed.X >= 0 && proposed.X < w && proposed.Y >= 0 && proposed.Y < h
	if inside {
		return BoundaryResult{Pos: proposed}
	}

	switch policy {
	case parameter.BoundaryWrap:
		return BoundaryResult{Pos: vmath.V2(vmath.Wrap(proposed.X, w), vmath.Wrap(proposed.Y, h))}

	case parameter.BoundaryBounce:
		x, bx := reflectAxis(proposed.X, w)
		y, by := reflectAxis(proposed.Y, h)
		return BoundaryResult{Pos: vmath.V2(x, y), BounceX: bx, BounceY: by}

	case parameter.BoundaryStick:
		return BoundaryResult{Pos: old, AtEdge: true}

	case parameter.BoundaryAbsorb:
		return BoundaryResult{Pos: old, Outcome: Removed}

	default: // clamp
		return BoundaryResult{Pos: vmath.V2(
			vmath.Clamp(proposed.X, 0, vmath.Below(w)),
			vmath.Clamp(proposed.Y, 0, vmath.Below(h)),
		)}
	}
}

// reflectAxis mirrors v back across the violated edge, clamping overshoots larger than the extent
func reflectAxis(v, extent float64) (float64, bool) {
	switch {
	case v < 0:
		v = -v
	case v >= extent:
		v = 2*extent - v
	default:
		return v, false
	}
	return vmath.Clamp(v, 0, vmath.Below(extent)), true
}
