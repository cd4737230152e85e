package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/tj-go/pkg/tj/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet opens an xlsx file and returns the records of one sheet.
// An empty sheet name selects the first sheet.
func ReadSheet(path, sheet string) ([]*models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return SheetRecords(f, sheet)
}

// SheetRecords returns the records of a sheet. The first non-empty row is
// the header; each following non-empty row becomes a record keyed by it.
func SheetRecords(f *excelize.File, sheet string) ([]*models.Record, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrSheetNotFound
		}
		sheet = list[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	b, ok := findDataBounds(rows)
	if !ok {
		return nil, nil
	}

	header := headerNames(rows[b.top], b)

	var result []*models.Record
	for _, row := range rows[b.top+1 : b.bottom+1] {
		if !b.hasData(row) {
			continue
		}

		rec := models.NewRecord()
		for i, name := range header {
			colIdx := b.left + i
			v := models.Absent()
			if colIdx < len(row) && row[colIdx] != "" {
				v = parseValue(row[colIdx])
			}
			rec.Set(name, v)
		}
		result = append(result, rec)
	}

	return result, nil
}

// headerNames returns the column names of a header row. Empty header cells
// are named after their column letter and repeated names get a suffix.
func headerNames(row []string, b dataBounds) []string {
	names := make([]string, 0, b.width())
	seen := make(map[string]int)
	for colIdx := b.left; colIdx <= b.right; colIdx++ {
		name := ""
		if colIdx < len(row) {
			name = strings.TrimSpace(row[colIdx])
		}
		if name == "" {
			name, _ = excelize.ColumnNumberToName(colIdx + 1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = name + "_" + strconv.Itoa(n)
		}
		names = append(names, name)
	}
	return names
}

// parseValue types the text of a cell.
// Returns a number for numeric text, a boolean for TRUE/FALSE, or the text.
func parseValue(s string) models.Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	switch s {
	case "TRUE":
		return models.Bool(true)
	case "FALSE":
		return models.Bool(false)
	}
	return models.Text(s)
}
