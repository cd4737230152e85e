package models

// Record is one input row: field names in first-seen order and their values.
type Record struct {
	// Keys lists the field names in the order they first appeared.
	Keys []string
	// Values maps field name to value.
	Values map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{Values: make(map[string]Value)}
}

// Set stores v under key. A repeated key keeps its first position.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.Values[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Values[key] = v
}

// Get returns the value stored under key, or an absent value.
func (r *Record) Get(key string) Value {
	return r.Values[key]
}

// Table is a set of records aligned on the union of their field names.
type Table struct {
	// Columns lists the column names in first-seen order across all records.
	Columns []string
	// Rows holds one value per column for each record.
	Rows [][]Value
}

// NewTable aligns records on the union of their keys.
func NewTable(records []*Record) *Table {
	t := &Table{}
	seen := make(map[string]bool)
	for _, r := range records {
		for _, k := range r.Keys {
			if !seen[k] {
				seen[k] = true
				t.Columns = append(t.Columns, k)
			}
		}
	}

	t.Rows = make([][]Value, 0, len(records))
	for _, r := range records {
		row := make([]Value, len(t.Columns))
		for i, c := range t.Columns {
			row[i] = r.Get(c)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Select returns a table with the given columns, 1-based, in the given
// order. Indices outside the table produce an unnamed column of absent values.
func (t *Table) Select(indices []int) *Table {
	out := &Table{
		Columns: make([]string, len(indices)),
		Rows:    make([][]Value, len(t.Rows)),
	}
	for j, idx := range indices {
		if idx >= 1 && idx <= len(t.Columns) {
			out.Columns[j] = t.Columns[idx-1]
		}
	}
	for i, row := range t.Rows {
		sel := make([]Value, len(indices))
		for j, idx := range indices {
			if idx >= 1 && idx <= len(row) {
				sel[j] = row[idx-1]
			}
		}
		out.Rows[i] = sel
	}
	return out
}

// NumericColumn returns the values of column i when every row holds a number.
func (t *Table) NumericColumn(i int) ([]float64, bool) {
	if i < 0 || i >= len(t.Columns) || len(t.Rows) == 0 {
		return nil, false
	}
	values := make([]float64, len(t.Rows))
	for r, row := range t.Rows {
		if row[i].Kind != KindNumber {
			return nil, false
		}
		values[r] = row[i].Num
	}
	return values, true
}
