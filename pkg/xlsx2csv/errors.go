package xlsx2csv

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a workbook excelize can read.
var ErrInvalidFormat = errors.New("invalid workbook format")

// Conversion stages reported by ConversionError.
const (
	StageRead  = "read"
	StageWrite = "write"
)

// ConversionError represents a failure while converting a single sheet.
type ConversionError struct {
	SheetName string
	Stage     string // "read" or "write"
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheetName, stage string, err error) *ConversionError {
	return &ConversionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
