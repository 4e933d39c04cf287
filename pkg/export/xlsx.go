package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Combinations"

var xlsxHeader = []string{"Rank", "Weight", "Priorities", "Subject", "Name", "Commission", "Professors", "Day", "Start", "End", "Building"}

// WriteXLSX writes the report as a single-sheet spreadsheet with the same rows as WriteCSV
func WriteXLSX(writer io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot remove default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return fmt.Errorf("cannot locate sheet: %w", err)
	}
	f.SetActiveSheet(index)

	//** Header
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("cannot create header style: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	lastColumn, err := excelize.ColumnNumberToName(len(xlsxHeader))
	if err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastColumn+"1", headerStyle); err != nil {
		return fmt.Errorf("cannot style header: %w", err)
	}
	if err := f.SetColWidth(sheetName, "D", "G", 18); err != nil {
		return fmt.Errorf("cannot size columns: %w", err)
	}

	//** Rows
	for i, row := range csvRows(report) {
		values := []any{row.Rank, row.Weight, row.Priorities, row.SubjectCode, row.SubjectName, row.Commission, row.Professors, row.Day, row.Start, row.End, row.Building}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cannot write row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("cannot write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(writer); err != nil {
		return fmt.Errorf("cannot write spreadsheet: %w", err)
	}
	return nil
}
