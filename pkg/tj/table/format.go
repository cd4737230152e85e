// Package table formats records as an aligned, colorized text table.
package table

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/ukaji3/tj-go/pkg/tj/models"
)

const (
	// isoMillis matches JavaScript's Date.toISOString.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
	// separator is placed between cells.
	separator = " ｜ "
	// placeholder replaces tabs and line breaks inside cells.
	placeholder = "☐"
)

// Options selects the highlight colors as hex strings ("#RRGGBB").
// An empty color disables that highlight.
type Options struct {
	Boolean    string
	False      string
	Negative   string
	Number     string
	UnixTime   string
	MsUnixTime string
	Even       string
	Odd        string
	Header     string
	// Numbers between UnixStart and UnixEnd (exclusive) are shown as dates,
	// read as milliseconds or seconds since the epoch.
	UnixStart time.Time
	UnixEnd   time.Time
}

// ParseDate parses a date as YYYY-MM-DD or RFC 3339, in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD or RFC 3339", s)
	}
	return t.UTC(), nil
}

type formatter struct {
	opts     Options
	renderer *lipgloss.Renderer
	startMs  float64
	endMs    float64
}

func newFormatter(opts Options) *formatter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return &formatter{
		opts:     opts,
		renderer: r,
		startMs:  float64(opts.UnixStart.UnixMilli()),
		endMs:    float64(opts.UnixEnd.UnixMilli()),
	}
}

// Format renders t with a header line followed by one line per row.
func Format(t *models.Table, opts Options) string {
	f := newFormatter(opts)

	lines := make([][]string, 0, len(t.Rows)+1)
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = clean(c)
	}
	lines = append(lines, header)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = f.convert(v)
		}
		lines = append(lines, cells)
	}

	widths := columnWidths(lines)
	sep := f.renderer.NewStyle().Foreground(lipgloss.Color("12")).Render(separator)

	out := make([]string, len(lines))
	for n, cells := range lines {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = pad(c, widths[i])
		}
		out[n] = f.colorizeLine(" "+strings.Join(padded, sep)+" ", n)
	}
	return strings.Join(out, "\n")
}

// convert returns the display text of a value.
func (f *formatter) convert(v models.Value) string {
	switch v.Kind {
	case models.KindNumber:
		return f.convertNumber(v.Num)
	case models.KindText:
		return clean(v.Text)
	case models.KindBool:
		if !v.Bool && f.opts.False != "" {
			return f.paint(v.String(), f.opts.False)
		}
		return f.paint(v.String(), f.opts.Boolean)
	case models.KindArray, models.KindObject:
		return f.renderer.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true).
			Bold(true).
			Render(v.String())
	}
	return ""
}

func (f *formatter) convertNumber(n float64) string {
	if f.opts.MsUnixTime != "" && n > f.startMs && n < f.endMs {
		ts := time.UnixMilli(int64(math.Round(n))).UTC()
		return f.paint(ts.Format(isoMillis), f.opts.MsUnixTime)
	}
	if f.opts.UnixTime != "" && n > f.startMs/1000 && n < f.endMs/1000 {
		ts := time.UnixMilli(int64(math.Round(n * 1000))).UTC()
		return f.paint(ts.Format(isoMillis), f.opts.UnixTime)
	}
	if n < 0 {
		return f.paint(models.FormatNumber(n), f.opts.Negative)
	}
	return f.paint(models.FormatNumber(n), f.opts.Number)
}

// paint colors s with a hex foreground, or returns it unchanged when hex is empty.
func (f *formatter) paint(s, hex string) string {
	if hex == "" {
		return s
	}
	return f.renderer.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

// colorizeLine puts the header, even or odd background behind a whole line.
// The background is reopened after every reset inside the line.
func (f *formatter) colorizeLine(line string, n int) string {
	hex := f.opts.Odd
	switch {
	case n == 0:
		hex = f.opts.Header
	case n%2 == 0:
		hex = f.opts.Even
	}
	c := termenv.TrueColor.Color(hex)
	if c == nil {
		return line
	}

	open := termenv.CSI + c.Sequence(true) + "m"
	reset := termenv.CSI + termenv.ResetSeq + "m"
	return open + strings.ReplaceAll(line, reset, reset+open) + reset
}

// columnWidths returns the widest display width of each column.
func columnWidths(lines [][]string) []int {
	var widths []int
	for _, cells := range lines {
		for i, c := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	return widths
}

// pad right-pads s to width display columns, ignoring escape sequences and
// counting wide characters twice.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

func clean(s string) string {
	return strings.NewReplacer("\t", placeholder, "\r", placeholder, "\n", placeholder).Replace(s)
}
