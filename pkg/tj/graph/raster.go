package graph

import (
	"fmt"
	"strings"
)

// Quadrant bits of a character cell. Pixel row 2y is the lower half of
// output row y because data y grows upward.
const (
	quadLowerLeft  = 1
	quadLowerRight = 2
	quadUpperLeft  = 4
	quadUpperRight = 8
)

// quadrantGlyphs maps a 4-bit quadrant pattern to its block element: index 0
// is a blank cell and index 15 a full block.
var quadrantGlyphs = [16]rune{
	' ', '▖', '▗', '▄',
	'▘', '▌', '▚', '▙',
	'▝', '▞', '▐', '▟',
	'▀', '▛', '▜', '█',
}

// Glyph returns the block element for a quadrant pattern (0..15).
func Glyph(pattern int) rune {
	return quadrantGlyphs[pattern&15]
}

// cell returns the quadrant pattern and the dominant (largest) value of the
// character cell at column cx, row cy.
func (g *Grid) cell(cx, cy int) (pattern, value int) {
	x, y := 2*cx, 2*cy
	quads := [4]struct{ v, bit int }{
		{g.pix.at(x, y), quadLowerLeft},
		{g.pix.at(x+1, y), quadLowerRight},
		{g.pix.at(x, y+1), quadUpperLeft},
		{g.pix.at(x+1, y+1), quadUpperRight},
	}
	for _, q := range quads {
		if q.v != 0 {
			pattern |= q.bit
		}
		value = max(value, q.v)
	}
	return pattern, value
}

// String renders the grid with its y labels, x label line and legend.
func (g *Grid) String() string {
	pal := NewPalette()
	rows, cols := g.pix.Rows/2, g.pix.Stride/2

	var b strings.Builder
	for cy := rows - 1; cy >= 0; cy-- {
		fmt.Fprintf(&b, "%*s", LabelWidth, g.yLabels[cy])
		for cx := 0; cx < cols; cx++ {
			pattern, value := g.cell(cx, cy)
			if pattern == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(pal.Paint(value, string(Glyph(pattern))))
		}
		b.WriteByte('\n')
	}

	b.WriteString(g.xLabel)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", LabelWidth+5))
	for i, h := range g.headers {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(pal.Paint(SeriesColor(i), h))
	}
	return b.String()
}
