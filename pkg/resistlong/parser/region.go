package parser

import (
	"fmt"
	"strings"
)

// Column is one retained column of a data region.
type Column struct {
	// Index is the 0-based worksheet column index.
	Index int
	// Header is the trimmed header text.
	Header string
	// Cells holds one value per retained data row, in row order.
	Cells []string
}

// Region is the data part of a worksheet after pruning.
type Region struct {
	// Rows holds the 1-based worksheet row number of every retained data row.
	Rows []int
	// Columns holds the retained columns, left to right.
	Columns []Column
}

// Empty reports whether the region has no data cells.
func (r Region) Empty() bool {
	return len(r.Rows) == 0 || len(r.Columns) == 0
}

// DataRegion cuts the data region out of a grid.
//
// The first skipRows rows are dropped; the next row is the header row and
// every row after it is a data row. The first skipCols columns are dropped.
// Data rows without any non-empty cell are removed, then columns without any
// non-empty data cell are removed. A header alone does not keep a column.
func DataRegion(grid [][]string, skipRows, skipCols int) Region {
	skipRows, skipCols = max(skipRows, 0), max(skipCols, 0)
	if len(grid) <= skipRows {
		return Region{}
	}
	header := grid[skipRows]
	data := grid[skipRows+1:]

	width := len(header)
	for _, row := range data {
		width = max(width, len(row))
	}

	var region Region
	var kept [][]string
	for i, row := range data {
		if hasData(row, skipCols) {
			region.Rows = append(region.Rows, skipRows+i+2)
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return Region{}
	}

	for c := skipCols; c < width; c++ {
		cells := make([]string, len(kept))
		nonEmpty := false
		for i, row := range kept {
			if c < len(row) {
				cells[i] = row[c]
				nonEmpty = nonEmpty || row[c] != ""
			}
		}
		if !nonEmpty {
			continue
		}
		region.Columns = append(region.Columns, Column{
			Index:  c,
			Header: headerName(header, c),
			Cells:  cells,
		})
	}
	return region
}

// hasData reports whether a row has a non-empty cell at or after column from.
func hasData(row []string, from int) bool {
	for c := from; c < len(row); c++ {
		if row[c] != "" {
			return true
		}
	}
	return false
}

// headerName trims a header cell; blank headers are named after their position.
func headerName(header []string, c int) string {
	if c < len(header) {
		if h := strings.TrimSpace(header[c]); h != "" {
			return h
		}
	}
	return fmt.Sprintf("Unnamed: %d", c)
}
