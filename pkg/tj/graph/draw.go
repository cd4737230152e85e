package graph

import (
	"fmt"
	"math"
)

const (
	// DefaultColumns is the terminal width assumed when none is known.
	DefaultColumns = 80
	// GraphRows is the height in rows of a multi-series graph.
	GraphRows = 19
	// XYRows is the height in rows of an XY graph.
	XYRows = 40
)

// DrawOptions sets the terminal area of a drawing. Zero values select the
// driver defaults.
type DrawOptions struct {
	Columns int
	Rows    int
}

func (o DrawOptions) size(defaultRows int) (cols, rows int) {
	cols, rows = o.Columns, o.Rows
	if cols <= 0 {
		cols = DefaultColumns
	}
	if rows <= 0 {
		rows = defaultRows
	}
	return cols, rows
}

// DrawGraph plots each series against its value index on a shared axis.
// Series i is drawn in color SeriesColor(i) and labeled headers[i].
func DrawGraph(series [][]float64, headers []string, cols int) (string, error) {
	return DrawGraphWith(series, headers, DrawOptions{Columns: cols})
}

// DrawGraphWith is DrawGraph with an explicit drawing area.
func DrawGraphWith(series [][]float64, headers []string, opts DrawOptions) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("%w: no series", ErrEmptyInput)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for i, s := range series {
		if len(s) == 0 {
			return "", fmt.Errorf("%w: series %d has no values", ErrEmptyInput, i)
		}
		for _, v := range s {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		n = max(n, len(s))
	}

	cols, rows := opts.size(GraphRows)
	g, err := NewGrid(cols, rows, 0, lo, float64(n), hi, headers)
	if err != nil {
		return "", err
	}

	for i, s := range series {
		c := SeriesColor(i)
		for j, v := range s {
			if j == 0 {
				g.Plot(0, v, c)
				continue
			}
			g.PlotLine(float64(j), v, c)
		}
	}
	return g.String(), nil
}

// DrawXY plots the points in order as one connected line. The first point
// uses the first series color and the segments the second.
func DrawXY(points [][2]float64, headers []string, cols int) (string, error) {
	return DrawXYWith(points, headers, DrawOptions{Columns: cols})
}

// DrawXYWith is DrawXY with an explicit drawing area.
func DrawXYWith(points [][2]float64, headers []string, opts DrawOptions) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("%w: no points", ErrEmptyInput)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}

	cols, rows := opts.size(XYRows)
	g, err := NewGrid(cols, rows, minX, minY, maxX, maxY, headers)
	if err != nil {
		return "", err
	}

	for j, p := range points {
		if j == 0 {
			g.Plot(p[0], p[1], SeriesColor(0))
			continue
		}
		g.PlotLine(p[0], p[1], SeriesColor(1))
	}
	return g.String(), nil
}
