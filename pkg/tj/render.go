package tj

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-kit/log/level"
	"github.com/ukaji3/tj-go/pkg/tj/graph"
	"github.com/ukaji3/tj-go/pkg/tj/models"
	"github.com/ukaji3/tj-go/pkg/tj/parser"
	"github.com/ukaji3/tj-go/pkg/tj/table"
)

// Render reads records from r, or from opts.XLSXPath when set, and renders
// them in opts.Mode.
func Render(r io.Reader, opts Options) (string, error) {
	records, err := readRecords(r, opts)
	if err != nil {
		return "", NewRenderError(opts.Mode, err)
	}

	t := models.NewTable(records)
	level.Debug(opts.logger()).Log("msg", "decoded input", "records", len(records), "columns", len(t.Columns))
	if len(opts.Columns) > 0 {
		t = t.Select(opts.Columns)
	}
	return RenderTable(t, opts)
}

// RenderTable renders t in opts.Mode. A table without rows renders as the
// empty string in table mode.
func RenderTable(t *models.Table, opts Options) (string, error) {
	logger := opts.logger()

	switch opts.Mode {
	case ModeTable, "":
		if len(t.Rows) == 0 {
			return "", nil
		}
		return table.Format(t, opts.Table), nil

	case ModeGraph:
		series, headers := numericColumns(t, -1)
		if len(series) == 0 {
			return "", NewRenderError(opts.Mode, fmt.Errorf("%w: no numeric columns", ErrEmptyInput))
		}
		d := opts.drawOptions(opts.Mode)
		level.Debug(logger).Log("msg", "drawing graph", "series", len(series), "columns", d.Columns, "rows", d.Rows)
		out, err := graph.DrawGraphWith(series, headers, d)
		if err != nil {
			return "", NewRenderError(opts.Mode, err)
		}
		return out, nil

	case ModeXY:
		series, headers := numericColumns(t, 2)
		if len(series) < 2 {
			return "", NewRenderError(opts.Mode, fmt.Errorf("%w: xy needs two numeric columns, found %d", ErrEmptyInput, len(series)))
		}
		points := make([][2]float64, len(series[0]))
		for i := range points {
			points[i] = [2]float64{series[0][i], series[1][i]}
		}
		d := opts.drawOptions(opts.Mode)
		level.Debug(logger).Log("msg", "drawing xy", "x", headers[0], "y", headers[1], "points", len(points), "columns", d.Columns, "rows", d.Rows)
		out, err := graph.DrawXYWith(points, headers, d)
		if err != nil {
			return "", NewRenderError(opts.Mode, err)
		}
		return out, nil
	}

	return "", NewRenderError(opts.Mode, fmt.Errorf("%w: %s", ErrInvalidMode, opts.Mode))
}

// readRecords decodes the JSON stream r, or the sheet named in opts.
func readRecords(r io.Reader, opts Options) ([]*models.Record, error) {
	if opts.XLSXPath == "" {
		return parser.DecodeStream(r)
	}

	if _, err := os.Stat(opts.XLSXPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, opts.XLSXPath)
	}
	level.Debug(opts.logger()).Log("msg", "reading workbook", "path", opts.XLSXPath, "sheet", opts.Sheet)
	return parser.ReadSheet(opts.XLSXPath, opts.Sheet)
}

// numericColumns returns up to limit columns whose rows are all numbers,
// with their names. A negative limit returns all of them.
func numericColumns(t *models.Table, limit int) ([][]float64, []string) {
	var series [][]float64
	var headers []string
	for i, name := range t.Columns {
		if limit >= 0 && len(series) == limit {
			break
		}
		if values, ok := t.NumericColumn(i); ok {
			series = append(series, values)
			headers = append(headers, name)
		}
	}
	return series, headers
}
