package graph

import "github.com/fatih/color"

// SeriesColorOffset is the palette index of the first series. Lower indices
// are left to structural colors.
const SeriesColorOffset = 8

// SGR parameters selecting a foreground color from the 256-color palette.
const (
	fgExtended  color.Attribute = 38
	paletteMode color.Attribute = 5
)

// Palette paints strings with 256-color foreground escapes.
// Colors are emitted regardless of whether stdout is a terminal.
type Palette struct {
	colors map[int]*color.Color
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{colors: make(map[int]*color.Color)}
}

// Paint wraps s in the escape for palette index code, clamped to 0..255.
func (p *Palette) Paint(code int, s string) string {
	code = clamp(code, 255)
	c, ok := p.colors[code]
	if !ok {
		c = color.New(fgExtended, paletteMode, color.Attribute(code))
		c.EnableColor()
		p.colors[code] = c
	}
	return c.Sprint(s)
}

// SeriesColor returns the color code of the i-th series.
func SeriesColor(i int) int {
	return SeriesColorOffset + i
}
