package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []struct {
	title string
	width float64
	value func(row *CombinationCSVRow) string
}{
	{"Rank", 12, func(row *CombinationCSVRow) string { return fmt.Sprint(row.Rank) }},
	{"Weight", 20, func(row *CombinationCSVRow) string { return fmt.Sprintf("%.2f", row.Weight) }},
	{"Subject", 25, func(row *CombinationCSVRow) string { return row.SubjectCode }},
	{"Name", 55, func(row *CombinationCSVRow) string { return row.SubjectName }},
	{"Commission", 25, func(row *CombinationCSVRow) string { return row.Commission }},
	{"Professors", 55, func(row *CombinationCSVRow) string { return row.Professors }},
	{"Day", 25, func(row *CombinationCSVRow) string { return row.Day }},
	{"Start", 15, func(row *CombinationCSVRow) string { return row.Start }},
	{"End", 15, func(row *CombinationCSVRow) string { return row.End }},
	{"Building", 30, func(row *CombinationCSVRow) string { return row.Building }},
}

// WritePDF renders the report as a landscape table, one line per timeblock
func WritePDF(writer io.Writer, report Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetTitle("Combinations "+report.ID, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "RANKED COMBINATIONS", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("%v - %v", report.ID, report.GeneratedAt.Format("2006-01-02 15:04 MST")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		for _, column := range pdfColumns {
			pdf.CellFormat(column.width, 8, column.title, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	header()
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	for _, row := range csvRows(report) {
		for _, column := range pdfColumns {
			pdf.CellFormat(column.width, 7, translate(column.value(row)), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
