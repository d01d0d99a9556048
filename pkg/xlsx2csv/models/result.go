package models

// SheetOutput describes one CSV file produced from a sheet.
type SheetOutput struct {
	// SheetName is the source sheet name.
	SheetName string `json:"sheet_name"`
	// Path is the CSV file written for the sheet.
	Path string `json:"path"`
	// Rows is the number of data rows written, header excluded.
	Rows int `json:"rows"`
}

// ConversionResult lists the files produced from a workbook, in sheet order.
type ConversionResult struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds one entry per converted sheet.
	Sheets []SheetOutput `json:"sheets"`
}
