package visual

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Scheme is a particle color gradient mapping t in [0,1] to a color
type Scheme uint8

const (
	SchemeIce Scheme = iota
	SchemeFire
	SchemePlasma
	SchemeViridis
	SchemeRainbow
	SchemeGrayscale
	SchemeOcean
	SchemeNeon
	SchemeLagoon
	SchemeViolet
	SchemeHarvest
	SchemeMidnight
	SchemeFrost
	SchemeSunset
	SchemeMatrix
	SchemeAmber
	schemeCount
)

var schemeNames = [schemeCount]string{
	"ice", "fire", "plasma", "viridis", "rainbow", "grayscale", "ocean", "neon",
	"lagoon", "violet", "harvest", "midnight", "frost", "sunset", "matrix", "amber",
}

// Three-stop gradient thresholds
const (
	GradientStop1 = 0.33
	GradientStop2 = 0.66
)

// stop is a gradient keyframe
type stop struct {
	at float64
	c  colorful.Color
}

func stops(pairs ...any) []stop {
	out := make([]stop, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, stop{at: pairs[i].(float64), c: MustHex(pairs[i+1].(string)).Colorful()})
	}
	return out
}

// Keyframes for the stop-based schemes, blended linearly in RGB
var schemeStops = map[Scheme][]stop{
	SchemeIce:       stops(0.0, "#0000B4", 0.5, "#717FD9", 1.0, "#FFFFFF"),
	SchemeFire:      stops(0.0, "#000000", GradientStop1, "#C80000", GradientStop2, "#FF9600", 1.0, "#FFFFC8"),
	SchemeViridis:   stops(0.0, "#4401AE", 0.5, "#726F76", 1.0, "#FDDD54"),
	SchemeGrayscale: stops(0.0, "#000000", 1.0, "#FFFFFF"),
	SchemeOcean:     stops(0.0, "#003264", 1.0, "#64C8FF"),
	SchemeNeon:      stops(0.0, "#FF00FF", 0.5, "#00FFFF", 1.0, "#00FF00"),
	SchemeLagoon:    stops(0.0, "#191724", GradientStop1, "#31748F", GradientStop2, "#F6C177", 1.0, "#EBBCBA"),
	SchemeViolet:    stops(0.0, "#282A36", GradientStop1, "#BD93F9", GradientStop2, "#FF79C6", 1.0, "#8BE9FD"),
	SchemeHarvest:   stops(0.0, "#282828", GradientStop1, "#D65D0E", GradientStop2, "#D79921", 1.0, "#FABD2F"),
	SchemeMidnight:  stops(0.0, "#1A1B26", GradientStop1, "#7AA2F7", GradientStop2, "#BB9AF7", 1.0, "#C0CAF5"),
	SchemeFrost:     stops(0.0, "#2E3440", GradientStop1, "#5E81AC", GradientStop2, "#88C0D0", 1.0, "#ECEFF4"),
	SchemeSunset:    stops(0.0, "#1A1423", GradientStop1, "#FF6B6B", GradientStop2, "#FFA07A", 1.0, "#FFE66D"),
	SchemeMatrix:    stops(0.0, "#0A0A0A", GradientStop1, "#003B00", GradientStop2, "#00FF41", 1.0, "#ADFF2F"),
	SchemeAmber:     stops(0.0, "#1A1A0A", GradientStop1, "#8B4000", GradientStop2, "#FFB000", 1.0, "#FFCC00"),
}

// Plasma phase offsets for sinusoidal channel cycling
const (
	plasmaPhaseGreen = 0.33
	plasmaPhaseBlue  = 0.67
	plasmaMinRed     = 50
)

func (s Scheme) String() string {
	if s < schemeCount {
		return schemeNames[s]
	}
	return "invalid"
}

func (s Scheme) Next() Scheme { return (s + 1) % schemeCount }
func (s Scheme) Prev() Scheme { return (s + schemeCount - 1) % schemeCount }

// ParseScheme resolves a scheme by name, case-insensitive
func ParseScheme(name string) (Scheme, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range schemeNames {
		if n == key {
			return Scheme(i), true
		}
	}
	return SchemeIce, false
}

// At evaluates the gradient directly; renderers should go through a Palette
func (s Scheme) At(t float64) RGB {
	t = clamp01(t)
	switch s {
	case SchemeRainbow:
		return FromColorful(colorful.Hsv(t*359.999, 1, 1))
	case SchemePlasma:
		r := (0.5 + 0.5*math.Sin(2*math.Pi*t)) * 255
		g := (0.5 + 0.5*math.Sin(2*math.Pi*(t+plasmaPhaseGreen))) * 200
		b := (0.5 + 0.5*math.Sin(2*math.Pi*(t+plasmaPhaseBlue))) * 255
		return RGB{max(uint8(r), plasmaMinRed), uint8(g), uint8(b)}
	}

	keys, ok := schemeStops[s]
	if !ok || len(keys) == 0 {
		return White
	}
	if t <= keys[0].at {
		return FromColorful(keys[0].c)
	}
	for i := 1; i < len(keys); i++ {
		if t <= keys[i].at {
			lo, hi := keys[i-1], keys[i]
			return FromColorful(lo.c.BlendRgb(hi.c, (t-lo.at)/(hi.at-lo.at)))
		}
	}
	return FromColorful(keys[len(keys)-1].c)
}

func clamp01(t float64) float64 {
	if !(t >= 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
