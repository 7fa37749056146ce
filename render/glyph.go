package render

import "github.com/lixenwraith/dla/parameter"

// BrailleBase is the empty braille pattern U+2800
const BrailleBase = 0x2800

// Braille dot bits indexed [column][row]
//
//	(0,0)=0x01  (1,0)=0x08
//	(0,1)=0x02  (1,1)=0x10
//	(0,2)=0x04  (1,2)=0x20
//	(0,3)=0x40  (1,3)=0x80
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Quadrant glyphs indexed by UL | UR<<1 | LL<<2 | LR<<3
var quadrantRunes = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

// Half block glyphs indexed by top | bottom<<1
var halfBlockRunes = [4]rune{' ', '▀', '▄', '█'}

// dotBit returns the pattern bit of sub-cell (dx, dy) for the matrix
func dotBit(m parameter.DotMatrix, dx, dy int) uint8 {
	switch m {
	case parameter.MatrixQuadrant:
		return 1 << (dy*2 + dx)
	case parameter.MatrixHalfBlock:
		return 1 << dy
	default:
		return brailleDots[dx][dy]
	}
}

// Glyph converts a sub-cell pattern into its character
func Glyph(m parameter.DotMatrix, bits uint8) rune {
	if bits == 0 {
		return ' '
	}
	switch m {
	case parameter.MatrixQuadrant:
		return quadrantRunes[bits&0x0F]
	case parameter.MatrixHalfBlock:
		return halfBlockRunes[bits&0x03]
	default:
		return rune(BrailleBase + int(bits))
	}
}
