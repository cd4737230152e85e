package parser

// dataBounds is the smallest block of cells holding every non-empty cell,
// as 0-based inclusive indices.
type dataBounds struct {
	top, bottom int
	left, right int
}

// findDataBounds scans rows for non-empty cells. It reports false when
// there are none.
func findDataBounds(rows [][]string) (dataBounds, bool) {
	b := dataBounds{top: -1, bottom: -1, left: -1, right: -1}
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.top < 0 {
				b.top = rowIdx
			}
			b.bottom = rowIdx
			if b.left < 0 || colIdx < b.left {
				b.left = colIdx
			}
			b.right = max(b.right, colIdx)
		}
	}
	return b, b.top >= 0
}

// width returns the number of columns in b.
func (b dataBounds) width() int {
	return b.right - b.left + 1
}

// hasData reports whether row holds a non-empty cell inside b.
func (b dataBounds) hasData(row []string) bool {
	for colIdx := b.left; colIdx <= b.right && colIdx < len(row); colIdx++ {
		if row[colIdx] != "" {
			return true
		}
	}
	return false
}
