package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dla/parameter/visual"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // resolved by DetectColorMode at init
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "auto"
	}
}

// ParseColorMode accepts "auto", "truecolor" ("24bit", "rgb") and "256"
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorModeAuto, nil
	case "truecolor", "24bit", "rgb":
		return ColorModeTrueColor, nil
	case "256", "xterm256":
		return ColorMode256, nil
	}
	return ColorModeAuto, fmt.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeLevel maps 0-255 to the nearest cube index 0-5
func cubeLevel(v uint8) int {
	best, bestDist := 0, abs(int(v))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c visual.RGB) uint8 {
	r, g, b := cubeLevel(c.R), cubeLevel(c.G), cubeLevel(c.B)
	cube := uint8(16 + 36*r + 6*g + b)

	// Grayscale ramp 232-255 maps to luminance 8, 18, ..., 238
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	if max(abs(int(c.R)-gray), abs(int(c.G)-gray), abs(int(c.B)-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}
	step := min((gray-8+5)/10, 23)
	step = max(step, 0)
	level := 8 + step*10
	grayDist := abs(int(c.R)-level) + abs(int(c.G)-level) + abs(int(c.B)-level)
	cubeDist := abs(int(c.R)-int(cubeValues[r])) + abs(int(c.G)-int(cubeValues[g])) + abs(int(c.B)-int(cubeValues[b]))
	if grayDist < cubeDist {
		return uint8(grayscaleStart + step)
	}
	return cube
}

// Color converts an RGB value to a tcell color for the mode
func Color(c visual.RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
