package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	categoriesSheet = "Categories"
)

// WriteExcel saves the summary as a workbook with a Summary and a Categories sheet.
func WriteExcel(path string, s Summary) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Elapsed seconds", s.Elapsed.Seconds()},
		{"Batches", s.Batches},
		{"Successes", s.Successes},
		{"Failures", s.Failures},
		{"Duplicates injected", s.Duplicates},
		{"Success rate %", s.SuccessRate()},
	}
	if err = writeRows(f, summarySheet, rows); err != nil {
		return err
	}

	if _, err = f.NewSheet(categoriesSheet); err != nil {
		return err
	}
	rows = [][]interface{}{{"Category", "Added"}}
	for _, c := range s.Categories() {
		rows = append(rows, []interface{}{c, s.ByCategory[c]})
	}
	if err = writeRows(f, categoriesSheet, rows); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
