package vmath

import "math"

// Tau is a full turn in radians
const Tau = 2 * math.Pi

// Clamp limits v to [lo, hi], NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle wraps an angle into [0, Tau)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	// Mod of a tiny negative value can round up to exactly Tau
	if a >= Tau {
		a = 0
	}
	return a
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Wrap maps v into [0, extent) toroidally
func Wrap(v, extent float64) float64 {
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	if v >= extent {
		v = 0
	}
	return v
}

// Below returns the largest float64 strictly less than extent
// Used as the inclusive upper clamp of a half-open [0, extent) range
func Below(extent float64) float64 {
	return math.Nextafter(extent, math.Inf(-1))
}

// FastRand is a xorshift64 generator (13, 17, 5)
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Angle returns a uniform angle in [0, Tau)
func (r *FastRand) Angle() float64 {
	return r.Float64() * Tau
}
