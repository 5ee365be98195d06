// Package parser reads worksheet content through excelize.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"github.com/xuri/excelize/v2"
)

// rawValues makes excelize return stored values instead of formatted text,
// so numbers and date serials are not run through the cell's number format.
var rawValues = excelize.Options{RawCellValue: true}

// ReadGrid returns every row of a sheet as unformatted cell text.
// Row i of the result is worksheet row i+1. Rows may be ragged.
func ReadGrid(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, rawValues)
}

// ParseValue converts a department cell into a Value.
// Surrounding whitespace is ignored for the numeric parse; Raw keeps the text.
func ParseValue(s string) models.Value {
	v := models.Value{Raw: s}
	t := strings.TrimSpace(s)
	if t == "" {
		return v
	}
	// Try integer first
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		v.Number, v.Valid = float64(i), true
		return v
	}
	// Try float
	if n, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		v.Number, v.Valid = n, true
	}
	return v
}
