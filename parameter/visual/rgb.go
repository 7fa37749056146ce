package visual

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex formats the color as #RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Colorful converts to the go-colorful representation for blending
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful clamps and quantizes a go-colorful color
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// MustHex parses #RRGGBB, panics on malformed literals
func MustHex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("visual: bad color literal %q: %v", s, err))
	}
	return FromColorful(c)
}

// Achromatic and accent colors shared by themes
var (
	Black     = RGB{0, 0, 0}
	NearBlack = RGB{8, 8, 12}
	Gray      = RGB{160, 160, 160}
	White     = RGB{255, 255, 255}
	Cyan      = RGB{0, 255, 255}
	Yellow    = RGB{255, 255, 0}
)
