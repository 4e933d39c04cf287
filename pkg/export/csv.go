package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
)

// CombinationCSVRow is one timeblock of one subject of a ranked combination
type CombinationCSVRow struct {
	Rank        int     `csv:"rank"`
	Weight      float64 `csv:"weight"`
	Priorities  string  `csv:"priorities"`
	SubjectCode string  `csv:"subject_code"`
	SubjectName string  `csv:"subject_name"`
	Commission  string  `csv:"commission"`
	Professors  string  `csv:"professors"`
	Day         string  `csv:"day"`
	Start       string  `csv:"start"`
	End         string  `csv:"end"`
	Building    string  `csv:"building"`
}

func csvRows(report Report) []*CombinationCSVRow {
	rows := make([]*CombinationCSVRow, 0)
	for _, combination := range report.Combinations {
		priorities := strings.Join(lo.Map(combination.Priorities, func(index int, _ int) string { return fmt.Sprint(index) }), " ")

		for _, subject := range combination.Subjects {
			row := CombinationCSVRow{
				Rank:        combination.Rank,
				Weight:      combination.Weight,
				Priorities:  priorities,
				SubjectCode: subject.Code,
				SubjectName: subject.Name,
				Commission:  subject.Commission,
				Professors:  strings.Join(subject.Professors, "; "),
			}

			// Subjects without classes still get a row
			if len(subject.Schedule) == 0 {
				rows = append(rows, &row)
				continue
			}
			for _, block := range subject.Schedule {
				blockRow := row
				blockRow.Day, blockRow.Start, blockRow.End, blockRow.Building = block.Day, block.Start, block.End, block.Building
				rows = append(rows, &blockRow)
			}
		}
	}
	return rows
}

func WriteCSV(writer io.Writer, report Report) error {
	rows := csvRows(report)
	if err := gocsv.Marshal(&rows, writer); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	return nil
}
