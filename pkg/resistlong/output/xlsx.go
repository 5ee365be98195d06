package output

import (
	"fmt"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX sink.
const (
	RetainedSheet = "Resultaat"
	ExcludedSheet = "Exclusie"
)

// WriteXLSX saves both partitions into one workbook, one sheet each.
// Numbers are written as numeric cells; absent text is left blank.
func WriteXLSX(path string, res *models.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RetainedSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ExcludedSheet); err != nil {
		return err
	}

	if err := streamTable(f, RetainedSheet, res.Retained); err != nil {
		return err
	}
	if err := streamTable(f, ExcludedSheet, res.Excluded); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

func streamTable(f *excelize.File, sheet string, t models.Table) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, rec := range t {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, xlsxRow(rec)); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+2, err)
		}
	}
	return sw.Flush()
}

func xlsxRow(rec models.LongRecord) []interface{} {
	var waarde interface{}
	switch {
	case rec.Waarde.Valid:
		waarde = rec.Waarde.Number
	case rec.Waarde.Raw != "":
		waarde = rec.Waarde.Raw
	}
	return []interface{}{
		text(rec.Organisme),
		text(rec.Resistentie),
		rec.Afdeling,
		waarde,
		flagInt(rec.BRMO),
		flagInt(rec.ESBL),
		flagInt(rec.VRE),
		flagInt(rec.MRSA),
		flagInt(rec.CARBA),
		rec.Year,
		rec.Month,
	}
}

// text maps absent strings to a blank cell.
func text(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
