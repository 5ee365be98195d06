package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyCell indicates the date cell holds no value.
var ErrEmptyCell = errors.New("parser: cell is empty")

// DateParseError reports a date cell whose content is not a day-month-year date.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a day-month-year date: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// dateLayouts are the accepted text forms, all in day-month-year order.
// Single-digit layouts also accept zero-padded input.
var dateLayouts = []string{
	"2-1-2006",
	"2-1-2006 15:04:05",
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2.1.2006",
	"2.1.2006 15:04:05",
}

// ReadPeriod reads the reporting period from a single date cell.
// Date-typed cells are stored as serial numbers and are converted using the
// workbook's date system; text cells must be in day-month-year order.
func ReadPeriod(f *excelize.File, sheetName, cell string) (models.ReportingPeriod, error) {
	name, err := NormalizeCellRef(cell)
	if err != nil {
		return models.ReportingPeriod{}, err
	}
	raw, err := f.GetCellValue(sheetName, name, rawValues)
	if err != nil {
		return models.ReportingPeriod{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return models.ReportingPeriod{}, ErrEmptyCell
	}

	t, err := ParseDate(raw, Uses1904(f))
	if err != nil {
		return models.ReportingPeriod{}, err
	}
	return models.ReportingPeriod{Year: t.Year(), Month: int(t.Month())}, nil
}

// ParseDate parses a date cell value. Text layouts are tried first, then the
// value is interpreted as an Excel date serial.
func ParseDate(raw string, date1904 bool) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, &DateParseError{Value: raw, Err: errors.New("no matching layout")}
	}
	if serial < 1 {
		return time.Time{}, &DateParseError{Value: raw, Err: errors.New("date serial out of range")}
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, &DateParseError{Value: raw, Err: err}
	}
	return t, nil
}

// Uses1904 reports whether the workbook uses the 1904 date system.
func Uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
