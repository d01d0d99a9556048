// Package parser reads workbook content through excelize.
package parser

import "github.com/xuri/excelize/v2"

// SheetCursor walks the sheet names of a workbook once, in the order the
// workbook declares them. The name list is fetched on the first call to
// Next. A cursor cannot be rewound.
type SheetCursor struct {
	f       *excelize.File
	names   []string
	loaded  bool
	pos     int
	current string
}

// NewSheetCursor returns a cursor over the sheets of f.
func NewSheetCursor(f *excelize.File) *SheetCursor {
	return &SheetCursor{f: f}
}

// Next advances to the next sheet and reports whether one exists.
func (c *SheetCursor) Next() bool {
	if !c.loaded {
		c.names = c.f.GetSheetList()
		c.loaded = true
	}
	if c.pos >= len(c.names) {
		c.current = ""
		return false
	}
	c.current = c.names[c.pos]
	c.pos++
	return true
}

// Name returns the sheet name the cursor is positioned on.
func (c *SheetCursor) Name() string {
	return c.current
}

// Visited returns how many sheets the cursor has yielded so far.
func (c *SheetCursor) Visited() int {
	return c.pos
}
