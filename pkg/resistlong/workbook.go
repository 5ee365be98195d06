package resistlong

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/parser"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/reshape"
	"github.com/xuri/excelize/v2"
)

// ProcessWorkbook reshapes every worksheet of a workbook, in sheet order.
// It returns one table per sheet. The first failing sheet aborts the workbook.
func ProcessWorkbook(ctx context.Context, path string, opts Options) ([]models.Table, error) {
	bookName := filepath.Base(path)
	cell, err := parser.NormalizeCellRef(opts.dateCell())
	if err != nil {
		return nil, fmt.Errorf("invalid date cell %q: %w", opts.dateCell(), err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewWorkbookOpenError(bookName, err)
	}
	defer f.Close()

	log := opts.logger().With(slog.String("workbook", bookName))
	sheetList := f.GetSheetList()
	tables := make([]models.Table, 0, len(sheetList))

	for _, sheetName := range sheetList {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		table, err := processSheet(f, bookName, sheetName, cell, opts.Layout)
		if err != nil {
			return nil, err
		}
		log.Debug("sheet processed",
			slog.String("sheet", sheetName),
			slog.String("period", table[0].ReportingPeriod.String()),
			slog.Int("records", len(table)))
		tables = append(tables, table)
	}

	log.Info("workbook processed", slog.Int("sheets", len(tables)))
	return tables, nil
}

// processSheet reads the reporting period and reshapes a single sheet.
func processSheet(f *excelize.File, bookName, sheetName, cell string, layout reshape.Layout) (models.Table, error) {
	period, err := parser.ReadPeriod(f, sheetName, cell)
	if err != nil {
		var perr *parser.DateParseError
		switch {
		case errors.Is(err, parser.ErrEmptyCell):
			return nil, NewMissingDateError(bookName, sheetName, cell)
		case errors.As(err, &perr):
			return nil, NewInvalidDateError(bookName, sheetName, cell, perr.Value, err)
		default:
			return nil, NewInvalidDateError(bookName, sheetName, cell, "", err)
		}
	}

	grid, err := parser.ReadGrid(f, sheetName)
	if err != nil {
		return nil, NewSheetProcessingError(bookName, sheetName, err)
	}

	table, err := reshape.Sheet(reshape.Input{
		Workbook: bookName,
		Sheet:    sheetName,
		Grid:     grid,
		Period:   period,
		Layout:   layout,
	})
	if err != nil {
		if errors.Is(err, reshape.ErrNoRecords) {
			err = NewEmptySheetError(bookName, sheetName)
		}
		return nil, NewSheetProcessingError(bookName, sheetName, err)
	}
	return table, nil
}
