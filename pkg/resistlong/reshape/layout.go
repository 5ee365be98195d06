package reshape

import "github.com/ukaji3/resistlong-go/pkg/resistlong/parser"

// Identifier column labels of the known worksheet template.
const (
	OrganismLabel   = "Organisme"
	ResistanceLabel = "Resistentie"
)

// Layout describes where the data region starts in a worksheet.
type Layout struct {
	// SkipRows is the number of metadata rows above the header row.
	SkipRows int
	// SkipCols is the number of leading columns left of the organism column.
	SkipCols int
}

// DefaultLayout returns the offsets of the known template: two metadata rows,
// header on row 3, organism in column C.
func DefaultLayout() Layout {
	return Layout{SkipRows: 2, SkipCols: 2}
}

// NormalizeDepartments applies the template-specific column rules to the
// department columns:
//   - a trailing column headed "Organisme" is dropped,
//   - columns headed like an identifier column are dropped,
//   - of columns sharing a header, only the first is kept.
func NormalizeDepartments(cols []parser.Column) []parser.Column {
	if n := len(cols); n > 0 && cols[n-1].Header == OrganismLabel {
		cols = cols[:n-1]
	}

	seen := map[string]bool{OrganismLabel: true, ResistanceLabel: true}
	out := make([]parser.Column, 0, len(cols))
	for _, c := range cols {
		if seen[c.Header] {
			continue
		}
		seen[c.Header] = true
		out = append(out, c)
	}
	return out
}
