package resistlong

import (
	"fmt"
)

// MissingDateError indicates a worksheet has no value in its date cell.
type MissingDateError struct {
	Workbook string
	Sheet    string
	Cell     string
}

func (e *MissingDateError) Error() string {
	return fmt.Sprintf("no date found in %s: workbook %q, sheet %q", e.Cell, e.Workbook, e.Sheet)
}

// NewMissingDateError creates a new MissingDateError.
func NewMissingDateError(workbook, sheet, cell string) *MissingDateError {
	return &MissingDateError{Workbook: workbook, Sheet: sheet, Cell: cell}
}

// InvalidDateError indicates the date cell could not be parsed as a date.
type InvalidDateError struct {
	Workbook string
	Sheet    string
	Cell     string
	Value    string
	Err      error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("reading date from %s failed: workbook %q, sheet %q: %v", e.Cell, e.Workbook, e.Sheet, e.Err)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// NewInvalidDateError creates a new InvalidDateError.
func NewInvalidDateError(workbook, sheet, cell, value string, err error) *InvalidDateError {
	return &InvalidDateError{Workbook: workbook, Sheet: sheet, Cell: cell, Value: value, Err: err}
}

// EmptySheetError indicates a worksheet produced no records.
type EmptySheetError struct {
	Workbook string
	Sheet    string
}

func (e *EmptySheetError) Error() string {
	return fmt.Sprintf("no data found in table: workbook %q, sheet %q", e.Workbook, e.Sheet)
}

// NewEmptySheetError creates a new EmptySheetError.
func NewEmptySheetError(workbook, sheet string) *EmptySheetError {
	return &EmptySheetError{Workbook: workbook, Sheet: sheet}
}

// SheetProcessingError represents a failure while reshaping a worksheet.
type SheetProcessingError struct {
	Workbook string
	Sheet    string
	Err      error
}

func (e *SheetProcessingError) Error() string {
	return fmt.Sprintf("processing table failed: workbook %q, sheet %q: %v", e.Workbook, e.Sheet, e.Err)
}

func (e *SheetProcessingError) Unwrap() error {
	return e.Err
}

// NewSheetProcessingError creates a new SheetProcessingError.
func NewSheetProcessingError(workbook, sheet string, err error) *SheetProcessingError {
	return &SheetProcessingError{Workbook: workbook, Sheet: sheet, Err: err}
}

// WorkbookOpenError indicates a workbook file could not be opened.
type WorkbookOpenError struct {
	Workbook string
	Err      error
}

func (e *WorkbookOpenError) Error() string {
	return fmt.Sprintf("opening workbook %q failed: %v", e.Workbook, e.Err)
}

func (e *WorkbookOpenError) Unwrap() error {
	return e.Err
}

// NewWorkbookOpenError creates a new WorkbookOpenError.
func NewWorkbookOpenError(workbook string, err error) *WorkbookOpenError {
	return &WorkbookOpenError{Workbook: workbook, Err: err}
}

// NoDataFoundError indicates a directory yielded no workbooks or no records.
type NoDataFoundError struct {
	Dir string
	// Files is the number of workbooks found in Dir.
	Files int
}

func (e *NoDataFoundError) Error() string {
	if e.Files == 0 {
		return fmt.Sprintf("no data found in directory %q: no workbooks", e.Dir)
	}
	return fmt.Sprintf("no data found in directory %q: %d workbooks produced no records", e.Dir, e.Files)
}

// NewNoDataFoundError creates a new NoDataFoundError.
func NewNoDataFoundError(dir string, files int) *NoDataFoundError {
	return &NoDataFoundError{Dir: dir, Files: files}
}
