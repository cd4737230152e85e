package graph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// LabelWidth is the width of the y-axis label gutter in columns.
	LabelWidth = 6
	// MarginColumns is the number of terminal columns not used for the plot area.
	MarginColumns = 10
	// MinColumns is the smallest terminal width a grid can be built for.
	MinColumns = MarginColumns + 10
)

// pixels is a 2D buffer of color codes stored row by row in one slice.
// Row 0 is the bottom of the plot.
type pixels struct {
	Pix    []int
	Stride int
	Rows   int
}

func newPixels(w, h int) pixels {
	return pixels{
		Pix:    make([]int, w*h),
		Stride: w,
		Rows:   h,
	}
}

func (p pixels) in(x, y int) bool {
	return x >= 0 && x < p.Stride && y >= 0 && y < p.Rows
}

// offset returns the index of pixel (x, y) in Pix.
func (p pixels) offset(x, y int) int {
	return y*p.Stride + x
}

// at returns the color code at (x, y), 0 outside the buffer.
func (p pixels) at(x, y int) int {
	if !p.in(x, y) {
		return 0
	}
	return p.Pix[p.offset(x, y)]
}

// set stores v at (x, y). Writes outside the buffer are ignored.
func (p pixels) set(x, y, v int) {
	if !p.in(x, y) {
		return
	}
	p.Pix[p.offset(x, y)] = v
}

// Grid is a logical pixel raster with two pixels per terminal cell in each
// direction. A Grid belongs to a single render and is not safe for
// concurrent use.
type Grid struct {
	// X and Y are the axis scales used for every coordinate conversion.
	X, Y Scale

	pix     pixels
	headers []string
	yLabels []string
	xLabel  string

	// last written position, in pixels, before rounding
	cursorX, cursorY float64
}

// NewGrid creates a grid for a terminal area of cols by rows characters with
// the given data bounds. Ten columns are reserved for the y-axis labels.
func NewGrid(cols, rows int, minX, minY, maxX, maxY float64, headers []string) (*Grid, error) {
	if cols < MinColumns || rows < 2 {
		return nil, fmt.Errorf("%w: %dx%d (need at least %dx2)", ErrGridTooSmall, cols, rows, MinColumns)
	}

	xs, err := NewScale(minX, maxX)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	ys, err := NewScale(minY, maxY)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	cells := cols - MarginColumns
	g := &Grid{
		X:       xs,
		Y:       ys,
		pix:     newPixels(cells*2, rows*2),
		headers: headers,
	}
	g.yLabels = rowLabels(ys, rows)
	g.xLabel = columnLabels(xs, cells)

	return g, nil
}

// Width returns the grid width in logical pixels.
func (g *Grid) Width() int { return g.pix.Stride }

// Height returns the grid height in logical pixels.
func (g *Grid) Height() int { return g.pix.Rows }

// Cursor returns the last position written by Set, in pixels.
func (g *Grid) Cursor() (x, y float64) { return g.cursorX, g.cursorY }

// YLabels returns one label per output row, bottom row first.
func (g *Grid) YLabels() []string { return g.yLabels }

// XLabel returns the x-axis label line.
func (g *Grid) XLabel() string { return g.xLabel }

// Set writes v at the pixel nearest to (x, y) and moves the cursor to (x, y).
// Positions outside the grid are clamped to its edge.
func (g *Grid) Set(x, y float64, v int) {
	px := clamp(int(math.Round(x)), g.pix.Stride-1)
	py := clamp(int(math.Round(y)), g.pix.Rows-1)
	g.pix.set(px, py, v)
	g.cursorX, g.cursorY = x, y
}

// At returns the value of the pixel nearest to (x, y), or 0 if it was never
// written or lies outside the grid.
func (g *Grid) At(x, y float64) int {
	return g.pix.at(int(math.Round(x)), int(math.Round(y)))
}

// Line draws from the cursor to (x, y), writing one pixel per unit step along
// the dominant axis, then the endpoint.
func (g *Grid) Line(x, y float64, v int) {
	x0, y0 := g.cursorX, g.cursorY
	dx, dy := x-x0, y-y0
	maxd := math.Max(math.Abs(dx), math.Abs(dy))
	steps := int(math.Floor(maxd))
	for i := 1; i <= steps; i++ {
		t := float64(i) / maxd
		g.Set(x0+dx*t, y0+dy*t, v)
	}
	g.Set(x, y, v)
}

// Project maps a data coordinate to pixel space.
func (g *Grid) Project(x, y float64) (px, py float64) {
	px = (x - g.X.Min) / (g.X.Max - g.X.Min) * float64(g.pix.Stride-1)
	py = (y - g.Y.Min) / (g.Y.Max - g.Y.Min) * float64(g.pix.Rows-1)
	return px, py
}

// Plot sets the pixel for data coordinate (x, y).
func (g *Grid) Plot(x, y float64, v int) {
	px, py := g.Project(x, y)
	g.Set(px, py, v)
}

// PlotLine draws a line from the cursor to data coordinate (x, y).
func (g *Grid) PlotLine(x, y float64, v int) {
	px, py := g.Project(x, y)
	g.Line(px, py, v)
}

// Dump returns the raw pixel values, top row first, one line per pixel row.
// Unset pixels print as '.', others as their value in base 36.
func (g *Grid) Dump() string {
	var b strings.Builder
	for y := g.pix.Rows - 1; y >= 0; y-- {
		for x := 0; x < g.pix.Stride; x++ {
			v := g.pix.at(x, y)
			if v == 0 {
				b.WriteByte('.')
				continue
			}
			b.WriteString(strconv.FormatInt(int64(v), 36))
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// rowLabels places each tick label on the output row nearest to its value.
func rowLabels(s Scale, rows int) []string {
	labels := make([]string, rows)
	last := float64(rows - 1)
	for _, v := range s.Ticks {
		pos := (v - s.Min) / (s.Max - s.Min) * last
		labels[clamp(int(math.Round(pos)), rows-1)] = FormatTick(v)
	}
	return labels
}

// columnLabels lays out the tick labels of s over cells columns, after the
// y-label gutter, leaving room for the widest label at the right edge.
func columnLabels(s Scale, cells int) string {
	labels := s.Labels()
	widest := 0
	for _, l := range labels {
		widest = max(widest, len(l))
	}
	room := float64(max(cells-widest, 0))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", LabelWidth))
	col := LabelWidth
	for i, v := range s.Ticks {
		pos := LabelWidth + int(math.Floor((v-s.Min)/(s.Max-s.Min)*room))
		pad := pos - col
		if i > 0 {
			pad = max(pad, 1)
		}
		pad = max(pad, 0)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(labels[i])
		col += pad + len(labels[i])
	}
	return b.String()
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
