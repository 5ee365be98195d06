package resistlong

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixtureSheet is one worksheet in the report template: a date in C2, the
// header row on row 3 and data rows below it, all starting at column C.
type fixtureSheet struct {
	Name   string
	Date   interface{}
	Header []string
	Rows   [][]interface{}
}

// writeWorkbook saves a workbook with the given sheets into dir.
func writeWorkbook(t *testing.T, dir, name string, sheets ...fixtureSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), s.Name))
		} else {
			_, err := f.NewSheet(s.Name)
			require.NoError(t, err)
		}

		require.NoError(t, f.SetCellValue(s.Name, "C1", "Kweekresultaten per afdeling"))
		if s.Date != nil {
			require.NoError(t, f.SetCellValue(s.Name, "C2", s.Date))
		}
		header := make([]interface{}, len(s.Header))
		for j, h := range s.Header {
			header[j] = h
		}
		require.NoError(t, f.SetSheetRow(s.Name, "C3", &header))
		for j, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(3, j+4)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow(s.Name, cell, &row))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}
