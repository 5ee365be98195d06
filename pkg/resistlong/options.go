// Package resistlong converts folders of microbiology report workbooks into a
// single long-format table of organism/resistance observations per department.
//
// Each worksheet holds one reporting period: a date in a fixed cell and a wide
// table of organisms (rows) against departments (columns). Run reads every
// workbook in a directory, reshapes every sheet, drops zero observations and
// splits the result into retained and excluded rows.
package resistlong

import (
	"log/slog"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/exclusion"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/reshape"
)

// DefaultDateCell is the cell holding the reporting date.
const DefaultDateCell = "C2"

// DefaultExtensions are the workbook file extensions picked up from a directory.
var DefaultExtensions = []string{".xlsx", ".xlsm"}

// Options configures a run.
type Options struct {
	// DateCell is the cell holding the reporting date. Empty means DefaultDateCell.
	DateCell string
	// Layout is the position of the data region.
	Layout reshape.Layout
	// Extensions lists accepted file extensions, compared case-insensitively.
	// Empty means DefaultExtensions.
	Extensions []string
	// Rules are the exclusion denylists.
	Rules exclusion.Rules
	// Workers is the number of workbooks processed in parallel.
	// Values of 0 or 1 process files sequentially.
	Workers int
	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns options for the known report template.
func DefaultOptions() Options {
	return Options{
		DateCell:   DefaultDateCell,
		Layout:     reshape.DefaultLayout(),
		Extensions: DefaultExtensions,
		Rules:      exclusion.DefaultRules(),
	}
}

func (o Options) dateCell() string {
	if o.DateCell != "" {
		return o.DateCell
	}
	return DefaultDateCell
}

func (o Options) extensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	return DefaultExtensions
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
