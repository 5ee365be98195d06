package models

import (
	"encoding/json"
	"strconv"
)

// Value is the observation value (Waarde) of a single department cell.
type Value struct {
	// Number is the parsed value. Only meaningful when Valid is true.
	Number float64
	// Valid reports whether the cell held a number.
	Valid bool
	// Raw is the cell text as read from the worksheet.
	Raw string
}

// Num returns a numeric Value.
func Num(n float64) Value {
	return Value{Number: n, Valid: true, Raw: strconv.FormatFloat(n, 'f', -1, 64)}
}

// IsNumericZero reports whether the value is a number equal to zero.
// Empty and non-numeric cells are never zero.
func (v Value) IsNumericZero() bool {
	return v.Valid && v.Number == 0
}

// IsEmpty reports whether the cell held nothing at all.
func (v Value) IsEmpty() bool {
	return !v.Valid && v.Raw == ""
}

// String renders numbers in their shortest form and falls back to the raw text.
func (v Value) String() string {
	if v.Valid {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Raw
}

// MarshalJSON encodes numbers as JSON numbers, text as strings and empty cells as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.Valid:
		return json.Marshal(v.Number)
	case v.Raw != "":
		return json.Marshal(v.Raw)
	default:
		return []byte("null"), nil
	}
}
