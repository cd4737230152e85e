package models

import (
	"math"
	"reflect"
	"testing"
)

func TestRecordSetKeepsFirstPosition(t *testing.T) {
	r := NewRecord()
	r.Set("a", Number(1))
	r.Set("b", Number(2))
	r.Set("a", Number(3))

	if !reflect.DeepEqual(r.Keys, []string{"a", "b"}) {
		t.Errorf("Expected keys [a b], got %v", r.Keys)
	}
	if r.Get("a") != Number(3) {
		t.Errorf("Expected 3, got %v", r.Get("a"))
	}
	if r.Get("c") != Absent() {
		t.Errorf("Expected absent, got %v", r.Get("c"))
	}
}

func TestNewTableColumnUnion(t *testing.T) {
	r1 := NewRecord()
	r1.Set("b", Number(1))
	r1.Set("a", Text("x"))
	r2 := NewRecord()
	r2.Set("c", Bool(true))
	r2.Set("b", Number(2))

	tbl := NewTable([]*Record{r1, r2})

	if !reflect.DeepEqual(tbl.Columns, []string{"b", "a", "c"}) {
		t.Errorf("Expected columns [b a c], got %v", tbl.Columns)
	}
	expected := [][]Value{
		{Number(1), Text("x"), Absent()},
		{Number(2), Absent(), Bool(true)},
	}
	if !reflect.DeepEqual(tbl.Rows, expected) {
		t.Errorf("Expected rows %v, got %v", expected, tbl.Rows)
	}
}

func TestSelect(t *testing.T) {
	r := NewRecord()
	r.Set("a", Number(1))
	r.Set("b", Number(2))
	tbl := NewTable([]*Record{r}).Select([]int{2, 1, 0, 9})

	if !reflect.DeepEqual(tbl.Columns, []string{"b", "a", "", ""}) {
		t.Errorf("Expected columns [b a  ], got %q", tbl.Columns)
	}
	expected := []Value{Number(2), Number(1), Absent(), Absent()}
	if !reflect.DeepEqual(tbl.Rows[0], expected) {
		t.Errorf("Expected row %v, got %v", expected, tbl.Rows[0])
	}
}

func TestNumericColumn(t *testing.T) {
	r1 := NewRecord()
	r1.Set("n", Number(1))
	r1.Set("m", Number(5))
	r2 := NewRecord()
	r2.Set("n", Number(2))
	tbl := NewTable([]*Record{r1, r2})

	values, ok := tbl.NumericColumn(0)
	if !ok || !reflect.DeepEqual(values, []float64{1, 2}) {
		t.Errorf("NumericColumn(0) = %v, %v, expected [1 2], true", values, ok)
	}
	if _, ok := tbl.NumericColumn(1); ok {
		t.Error("Expected column with a missing value to be non-numeric")
	}
	if _, ok := tbl.NumericColumn(5); ok {
		t.Error("Expected out-of-range column to be non-numeric")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Number(1.5), "1.5"},
		{Number(-2), "-2"},
		{Number(1e21), "1e+21"},
		{Number(1e-7), "1e-07"},
		{Number(123456789), "123456789"},
		{Text("x"), "x"},
		{Bool(false), "false"},
		{Array(), "[Array]"},
		{Object(), "{Object}"},
		{Absent(), ""},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("%v.String() = %q, expected %q", tt.value.Kind, got, tt.expected)
		}
	}
}

func TestFormatNumberZero(t *testing.T) {
	if got := FormatNumber(0); got != "0" {
		t.Errorf("FormatNumber(0) = %q, expected %q", got, "0")
	}
	if got := FormatNumber(math.Copysign(0, -1)); got != "0" {
		t.Errorf("FormatNumber(-0) = %q, expected %q", got, "0")
	}
}
