package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseCellRef parses a single cell reference such as "C2" or "$C$2".
// Returns 1-based column and row numbers.
func ParseCellRef(ref string) (col, row int, err error) {
	// Remove $ signs
	name := strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if name == "" {
		return 0, 0, fmt.Errorf("empty cell reference")
	}
	if strings.Contains(name, ":") {
		return 0, 0, fmt.Errorf("cell reference %q is a range", ref)
	}
	return excelize.CellNameToCoordinates(name)
}

// NormalizeCellRef returns the canonical name for a cell reference ("$c$2" -> "C2").
func NormalizeCellRef(ref string) (string, error) {
	col, row, err := ParseCellRef(ref)
	if err != nil {
		return "", err
	}
	return excelize.CoordinatesToCellName(col, row)
}
