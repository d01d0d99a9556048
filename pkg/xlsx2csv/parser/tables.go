package parser

import (
	"fmt"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/xuri/excelize/v2"
)

// TableOptions controls how a sheet is read into a Table.
type TableOptions struct {
	// RawValues reads stored values instead of number-formatted ones.
	RawValues bool
	// Area, when set, crops the sheet before the header row is chosen.
	Area *models.PrintArea
}

// ReadTable reads a whole sheet into a Table whose header is the first
// non-blank row.
func ReadTable(f *excelize.File, sheetName string, opts TableOptions) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: opts.RawValues})
	if err != nil {
		return nil, err
	}
	if opts.Area != nil {
		rows = cropRows(rows, *opts.Area)
	}
	return BuildTable(sheetName, rows), nil
}

// BuildTable turns ragged sheet rows into a rectangular Table.
// Blank rows are dropped, every row is padded to the widest row, empty
// header labels become "Unnamed: <i>" and repeated labels get a ".<n>"
// suffix.
func BuildTable(sheetName string, rows [][]string) *models.Table {
	table := &models.Table{SheetName: sheetName}

	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return table
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	table.Header = normalizeHeader(padRow(rows[0], width))
	for _, row := range rows[1:] {
		table.Rows = append(table.Rows, padRow(row, width))
	}
	return table
}

// dropBlankRows removes rows without any non-empty cell.
func dropBlankRows(rows [][]string) [][]string {
	kept := rows[:0:0]
	for _, row := range rows {
		if !isBlank(row) {
			kept = append(kept, row)
		}
	}
	return kept
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// padRow returns a copy of row extended with empty cells to width.
func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// normalizeHeader labels empty columns and de-duplicates repeated labels.
func normalizeHeader(header []string) []string {
	used := make(map[string]bool, len(header))
	for i, label := range header {
		if label == "" {
			label = fmt.Sprintf("Unnamed: %d", i)
		}
		base := label
		for n := 1; used[label]; n++ {
			label = fmt.Sprintf("%s.%d", base, n)
		}
		used[label] = true
		header[i] = label
	}
	return header
}

// cropRows restricts rows to the cells inside area.
func cropRows(rows [][]string, area models.PrintArea) [][]string {
	var cropped [][]string
	for rowIdx := area.R1 - 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		start := area.C1 - 1
		end := area.C2
		if end > len(row) {
			end = len(row)
		}
		if start >= end {
			cropped = append(cropped, nil)
			continue
		}
		cropped = append(cropped, row[start:end])
	}
	return cropped
}
