package visual

// PaletteSize is the number of precomputed gradient entries
const PaletteSize = 256

// Palette is a precomputed gradient lookup table
// Build once per scheme change, then map per cell
type Palette struct {
	Scheme Scheme
	lut    [PaletteSize]RGB
}

// NewPalette samples the scheme at PaletteSize evenly spaced points
func NewPalette(s Scheme) *Palette {
	p := &Palette{Scheme: s}
	for i := range p.lut {
		p.lut[i] = s.At(float64(i) / (PaletteSize - 1))
	}
	return p
}

// Map returns the LUT entry for t in [0,1], clamping out-of-range input
func (p *Palette) Map(t float64) RGB {
	idx := int(clamp01(t) * (PaletteSize - 1))
	return p.lut[idx]
}
