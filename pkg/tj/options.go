// Package tj renders JSON or xlsx records as a colorized table or a
// terminal line graph.
package tj

import (
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/ukaji3/tj-go/pkg/tj/graph"
	"github.com/ukaji3/tj-go/pkg/tj/table"
)

// Mode represents the output mode.
type Mode string

const (
	// ModeTable prints an aligned, colorized table.
	ModeTable Mode = "table"
	// ModeGraph plots every numeric column against the row index.
	ModeGraph Mode = "graph"
	// ModeXY plots the second numeric column against the first.
	ModeXY Mode = "xy"
)

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeTable, ModeGraph, ModeXY:
		return m, nil
	}
	return "", fmt.Errorf("%w: %s (must be table, graph, or xy)", ErrInvalidMode, s)
}

// Default table colors and timestamp window.
const (
	DefaultBooleanColor    = "#2222FF"
	DefaultNegativeColor   = "#FF2222"
	DefaultUnixTimeColor   = "#2222FF"
	DefaultMsUnixTimeColor = "#22FF22"
	DefaultEvenColor       = "#111111"
	DefaultOddColor        = "#333333"
	DefaultHeaderColor     = "#AA2222"
	DefaultUnixStart       = "2013-01-01"
	DefaultUnixEnd         = "2030-01-01"
)

// Options configures rendering.
type Options struct {
	// Mode selects table, graph, or xy output.
	Mode Mode
	// Table holds the table colors and timestamp window.
	Table table.Options
	// Columns selects and orders columns, 1-based. Empty keeps all columns.
	Columns []int
	// Width is the terminal width in columns.
	// If 0, the width of stdout is used, or 80 when it is not a terminal.
	Width int
	// GraphHeight is the height in rows of a graph. If 0, defaults to 19.
	GraphHeight int
	// XYHeight is the height in rows of an XY graph. If 0, defaults to 40.
	XYHeight int
	// XLSXPath reads records from this workbook instead of the JSON input.
	XLSXPath string
	// Sheet names the worksheet of XLSXPath. If empty, the first sheet is used.
	Sheet string
	// Logger receives debug output. If nil, nothing is logged.
	Logger log.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeTable,
		Table: table.Options{
			Boolean:    DefaultBooleanColor,
			Negative:   DefaultNegativeColor,
			UnixTime:   DefaultUnixTimeColor,
			MsUnixTime: DefaultMsUnixTimeColor,
			Even:       DefaultEvenColor,
			Odd:        DefaultOddColor,
			Header:     DefaultHeaderColor,
			UnixStart:  time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC),
			UnixEnd:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		GraphHeight: graph.GraphRows,
		XYHeight:    graph.XYRows,
	}
}

func (o Options) logger() log.Logger {
	if o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}

// drawOptions returns the drawing area of mode m.
func (o Options) drawOptions(m Mode) graph.DrawOptions {
	d := graph.DrawOptions{Columns: o.Width, Rows: o.GraphHeight}
	if m == ModeXY {
		d.Rows = o.XYHeight
	}
	if d.Columns <= 0 {
		d.Columns = TerminalColumns()
	}
	return d
}
