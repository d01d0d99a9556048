// Package models defines data structures for workbook conversion.
package models

// Table represents the tabular content of a single sheet.
type Table struct {
	// SheetName is the sheet the table was read from.
	SheetName string `json:"sheet_name"`
	// Header holds the column labels taken from the first non-blank row.
	Header []string `json:"header"`
	// Rows holds data rows, each exactly len(Header) cells wide.
	Rows [][]string `json:"rows,omitempty"`
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Header)
}

// Empty reports whether the table has neither header nor data.
func (t *Table) Empty() bool {
	return len(t.Header) == 0 && len(t.Rows) == 0
}
