package app

import (
	"fmt"
	"math"
)

// fieldEffect tells the loop what an edit invalidates
type fieldEffect uint8

const (
	effectNone   fieldEffect = iota // engine re-reads the value next tick
	effectReset                     // initial structure changed, regenerate
	effectLayout                    // lattice size depends on it, relayout then regenerate
)

// field is one adjustable entry of the parameter panel
type field struct {
	label  string
	value  func(a *App) string
	adjust func(a *App, delta int)
	effect fieldEffect
}

// round2 removes float drift from repeated fixed steps
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func stepFloat(v *float64, step float64, delta int) {
	*v = round2(*v + step*float64(delta))
}

func stepInt(v *int, step, delta int) {
	*v += step * delta
}

func toggle(v *bool) {
	*v = !*v
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

// fields is the panel order; the first groups follow the walk of one particle
var fields = []field{
	{"Particles", func(a *App) string { return fmt.Sprint(a.params.Particles) },
		func(a *App, d int) { stepInt(&a.params.Particles, 100, d) }, effectNone},
	{"Speed", func(a *App) string { return fmt.Sprint(a.params.Speed) },
		func(a *App, d int) { stepInt(&a.params.Speed, 1, d) }, effectNone},
	{"Seed", func(a *App) string { return a.params.SeedPattern.String() },
		func(a *App, d int) {
			if d < 0 {
				a.params.SeedPattern = a.params.SeedPattern.Prev()
			} else {
				a.params.SeedPattern = a.params.SeedPattern.Next()
			}
		}, effectReset},

	{"Walk step", func(a *App) string { return f2(a.params.WalkStep) },
		func(a *App, d int) { stepFloat(&a.params.WalkStep, 0.1, d) }, effectNone},
	{"Direction", func(a *App) string { return fmt.Sprintf("%.0f°", a.params.WalkAngle) },
		func(a *App, d int) { stepFloat(&a.params.WalkAngle, 15, d) }, effectNone},
	{"Force", func(a *App) string { return f2(a.params.WalkForce) },
		func(a *App, d int) { stepFloat(&a.params.WalkForce, 0.05, d) }, effectNone},
	{"Radial bias", func(a *App) string { return f2(a.params.RadialBias) },
		func(a *App, d int) { stepFloat(&a.params.RadialBias, 0.05, d) }, effectNone},
	{"Lattice walk", func(a *App) string { return onOff(a.params.LatticeWalk) },
		func(a *App, d int) { toggle(&a.params.LatticeWalk) }, effectNone},
	{"Adaptive", func(a *App) string { return onOff(a.params.AdaptiveStep) },
		func(a *App, d int) { toggle(&a.params.AdaptiveStep) }, effectNone},
	{"Adapt factor", func(a *App) string { return f2(a.params.AdaptiveFactor) },
		func(a *App, d int) { stepFloat(&a.params.AdaptiveFactor, 0.5, d) }, effectNone},

	{"Neighborhood", func(a *App) string { return a.params.Neighborhood.String() },
		func(a *App, d int) {
			if d < 0 {
				a.params.Neighborhood = a.params.Neighborhood.Prev()
			} else {
				a.params.Neighborhood = a.params.Neighborhood.Next()
			}
		}, effectNone},
	{"Stickiness", func(a *App) string { return f2(a.params.Stickiness) },
		func(a *App, d int) { stepFloat(&a.params.Stickiness, 0.05, d) }, effectNone},
	{"Multi-contact", func(a *App) string { return fmt.Sprint(a.params.MultiContact) },
		func(a *App, d int) { stepInt(&a.params.MultiContact, 1, d) }, effectNone},
	{"Tip sticky", func(a *App) string { return f2(a.params.TipStickiness) },
		func(a *App, d int) { stepFloat(&a.params.TipStickiness, 0.05, d) }, effectNone},
	{"Side sticky", func(a *App) string { return f2(a.params.SideStickiness) },
		func(a *App, d int) { stepFloat(&a.params.SideStickiness, 0.05, d) }, effectNone},
	{"Gradient", func(a *App) string { return f2(a.params.StickinessGradient) },
		func(a *App, d int) { stepFloat(&a.params.StickinessGradient, 0.05, d) }, effectNone},

	{"Spawn", func(a *App) string { return a.params.SpawnMode.String() },
		func(a *App, d int) {
			if d < 0 {
				a.params.SpawnMode = a.params.SpawnMode.Prev()
			} else {
				a.params.SpawnMode = a.params.SpawnMode.Next()
			}
		}, effectNone},
	{"Boundary", func(a *App) string { return a.params.Boundary.String() },
		func(a *App, d int) {
			if d < 0 {
				a.params.Boundary = a.params.Boundary.Prev()
			} else {
				a.params.Boundary = a.params.Boundary.Next()
			}
		}, effectNone},
	{"Spawn offset", func(a *App) string { return fmt.Sprintf("%.0f", a.params.SpawnOffset) },
		func(a *App, d int) { stepFloat(&a.params.SpawnOffset, 5, d) }, effectNone},
	{"Escape mult", func(a *App) string { return f2(a.params.EscapeMult) },
		func(a *App, d int) { stepFloat(&a.params.EscapeMult, 0.5, d) }, effectNone},
	{"Min radius", func(a *App) string { return fmt.Sprintf("%.0f", a.params.MinRadius) },
		func(a *App, d int) { stepFloat(&a.params.MinRadius, 5, d) }, effectNone},
	{"Max iter", func(a *App) string { return fmt.Sprint(a.params.MaxIterations) },
		func(a *App, d int) { stepInt(&a.params.MaxIterations, 1000, d) }, effectNone},

	{"Color mode", func(a *App) string { return a.visual.ColorMode.String() },
		func(a *App, d int) {
			if d < 0 {
				a.visual.ColorMode = a.visual.ColorMode.Prev()
			} else {
				a.visual.ColorMode = a.visual.ColorMode.Next()
			}
		}, effectNone},
	{"Theme", func(a *App) string { return string(a.visual.Theme) },
		func(a *App, d int) {
			if d < 0 {
				a.visual.Theme = a.visual.Theme.Prev()
			} else {
				a.visual.Theme = a.visual.Theme.Next()
			}
		}, effectNone},
	{"Attr color", func(a *App) string { return onOff(a.visual.ColorByAttribute) },
		func(a *App, d int) { toggle(&a.visual.ColorByAttribute) }, effectNone},
	{"Highlight", func(a *App) string { return fmt.Sprint(a.visual.Highlight) },
		func(a *App, d int) { stepInt(&a.visual.Highlight, 10, d) }, effectNone},
	{"Brightness", func(a *App) string { return f2(a.visual.MinBrightness) },
		func(a *App, d int) { stepFloat(&a.visual.MinBrightness, 0.1, d) }, effectNone},
	{"Invert", func(a *App) string { return onOff(a.visual.Invert) },
		func(a *App, d int) { toggle(&a.visual.Invert) }, effectNone},
	{"Dots", func(a *App) string { return a.visual.Matrix.String() },
		func(a *App, d int) {
			if d < 0 {
				a.visual.Matrix = a.visual.Matrix.Prev()
			} else {
				a.visual.Matrix = a.visual.Matrix.Next()
			}
		}, effectLayout},
}

// fieldIndex finds a field by label, -1 if absent
func fieldIndex(label string) int {
	for i := range fields {
		if fields[i].label == label {
			return i
		}
	}
	return -1
}

// applyField adjusts one field, clamps, then applies its effect
func (a *App) applyField(idx, delta int) {
	f := &fields[idx]
	f.adjust(a, delta)
	a.params.Clamp()
	a.visual.Clamp()

	switch f.effect {
	case effectReset:
		a.reset()
	case effectLayout:
		a.relayout()
	}
}
