// Package reshape turns a wide organism-by-department worksheet into long records.
package reshape

import (
	"errors"
	"strings"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/indicator"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/parser"
)

var (
	// ErrNoRecords indicates the worksheet produced no long records.
	ErrNoRecords = errors.New("reshape: no data in table")

	// ErrMissingIdentifierColumns indicates the data region has fewer than
	// two columns, so there is no organism/resistance pair to read.
	ErrMissingIdentifierColumns = errors.New("reshape: organism and resistance columns not found")
)

// Input is one worksheet to reshape.
type Input struct {
	Workbook string
	Sheet    string
	// Grid is the raw sheet content as returned by parser.ReadGrid.
	Grid   [][]string
	Period models.ReportingPeriod
	Layout Layout
}

// Sheet melts the worksheet into one record per data row and department
// column. Records are ordered by department column, then by row.
func Sheet(in Input) (models.Table, error) {
	region := parser.DataRegion(in.Grid, in.Layout.SkipRows, in.Layout.SkipCols)
	if region.Empty() {
		return nil, ErrNoRecords
	}
	if len(region.Columns) < 2 {
		return nil, ErrMissingIdentifierColumns
	}

	n := len(region.Rows)
	organisms := identifiers(region.Columns[0].Cells)
	resistances := identifiers(region.Columns[1].Cells)
	flags := make([]indicator.Flags, n)
	for i, label := range resistances {
		flags[i] = indicator.Derive(label)
	}

	departments := NormalizeDepartments(region.Columns[2:])
	if len(departments) == 0 {
		return nil, ErrNoRecords
	}

	records := make(models.Table, 0, len(departments)*n)
	for _, col := range departments {
		for i, row := range region.Rows {
			f := flags[i]
			records = append(records, models.LongRecord{
				Organisme:       organisms[i],
				Resistentie:     resistances[i],
				Afdeling:        col.Header,
				Waarde:          parser.ParseValue(normalizeText(col.Cells[i])),
				BRMO:            f.BRMO,
				ESBL:            f.ESBL,
				VRE:             f.VRE,
				MRSA:            f.MRSA,
				CARBA:           f.CARBA,
				ReportingPeriod: in.Period,
				Workbook:        in.Workbook,
				Sheet:           in.Sheet,
				Row:             row,
			})
		}
	}
	return records, nil
}

// normalizeText replaces non-breaking spaces with ordinary spaces.
func normalizeText(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// identifiers normalizes an identifier column. Blank cells become "" (absent).
func identifiers(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(normalizeText(c))
	}
	return out
}
