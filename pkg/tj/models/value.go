// Package models defines data structures shared by the tj renderers.
package models

import (
	"math"
	"strconv"
)

// Kind is the kind of a decoded input value.
type Kind int

const (
	// KindAbsent is a missing field or a JSON null.
	KindAbsent Kind = iota
	// KindNumber is a JSON number.
	KindNumber
	// KindText is a JSON string.
	KindText
	// KindBool is a JSON boolean.
	KindBool
	// KindArray is a nested JSON array. Its elements are not kept.
	KindArray
	// KindObject is a nested JSON object. Its fields are not kept.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single table cell.
type Value struct {
	Kind Kind
	// Num holds the value of a KindNumber.
	Num float64
	// Text holds the value of a KindText.
	Text string
	// Bool holds the value of a KindBool.
	Bool bool
}

// Number returns a number value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Array returns a placeholder for a nested array.
func Array() Value { return Value{Kind: KindArray} }

// Object returns a placeholder for a nested object.
func Object() Value { return Value{Kind: KindObject} }

// Absent returns the value of a missing field.
func Absent() Value { return Value{} }

// String returns the plain text form of v: numbers in shortest form,
// booleans as true/false, nested values as [Array] and {Object}, absent
// values as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return FormatNumber(v.Num)
	case KindText:
		return v.Text
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindArray:
		return "[Array]"
	case KindObject:
		return "{Object}"
	}
	return ""
}

// FormatNumber formats f in its shortest form, switching to exponent
// notation only for very large or very small magnitudes.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
