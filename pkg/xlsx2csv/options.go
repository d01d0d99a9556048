// Package xlsx2csv converts every sheet of a workbook into its own CSV file.
package xlsx2csv

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultComma is the field delimiter used when Options.Comma is unset.
const DefaultComma = ','

// Options configures conversion behavior.
type Options struct {
	// OutputDir is the directory CSV files are written to.
	// Empty means the current working directory.
	OutputDir string
	// SanitizeNames replaces characters that are unsafe in file names
	// when mapping a sheet name to its CSV file name.
	SanitizeNames bool
	// RawValues reads stored cell values instead of formatted ones.
	RawValues bool
	// UsePrintArea crops each sheet to its defined print area.
	// If nil, defaults to false.
	UsePrintArea *bool
	// Comma is the field delimiter. Zero means DefaultComma.
	Comma rune
	// Out receives one confirmation line per converted sheet.
	// If nil, confirmations are discarded.
	Out io.Writer
	// Logger receives debug diagnostics.
	Logger zerolog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Comma:  DefaultComma,
		Logger: zerolog.Nop(),
	}
}

// ShouldUsePrintArea returns whether sheets are cropped to their print area.
func (o Options) ShouldUsePrintArea() bool {
	if o.UsePrintArea != nil {
		return *o.UsePrintArea
	}
	return false
}

// Delimiter returns the field delimiter to write with.
func (o Options) Delimiter() rune {
	if o.Comma == 0 {
		return DefaultComma
	}
	return o.Comma
}
