package xlsx2csv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/output"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/parser"
	"github.com/xuri/excelize/v2"
)

// Convert writes every sheet of the workbook at path to its own CSV file.
// Sheets are processed in workbook order; the first failing sheet aborts
// the run and files already written for earlier sheets are left in place.
func Convert(path string, opts Options) (*models.ConversionResult, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log := opts.Logger.With().Str("book", filepath.Base(path)).Logger()

	var printAreas map[string][]models.PrintArea
	if opts.ShouldUsePrintArea() {
		printAreas = parser.ReadPrintAreas(f)
		log.Debug().Int("sheets_with_area", len(printAreas)).Msg("read print areas")
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	result := &models.ConversionResult{BookName: filepath.Base(path)}

	sheets := parser.NewSheetCursor(f)
	for sheets.Next() {
		sheetName := sheets.Name()

		tableOpts := parser.TableOptions{RawValues: opts.RawValues}
		if areas := printAreas[sheetName]; len(areas) > 0 {
			tableOpts.Area = &areas[0]
		}

		table, err := parser.ReadTable(f, sheetName, tableOpts)
		if err != nil {
			return result, NewConversionError(sheetName, StageRead, err)
		}

		fileName := output.FileName(sheetName, opts.SanitizeNames)
		dest := filepath.Join(opts.OutputDir, fileName)
		if err := output.WriteFile(dest, table, opts.Delimiter()); err != nil {
			return result, NewConversionError(sheetName, StageWrite, err)
		}

		log.Debug().
			Str("sheet", sheetName).
			Int("columns", table.Width()).
			Int("rows", len(table.Rows)).
			Str("dest", dest).
			Msg("wrote sheet")

		if opts.Out != nil {
			fmt.Fprintf(opts.Out, "Saved sheet '%s' to '%s'\n", sheetName, dest)
		}

		result.Sheets = append(result.Sheets, models.SheetOutput{
			SheetName: sheetName,
			Path:      dest,
			Rows:      len(table.Rows),
		})
	}

	return result, nil
}

// openWorkbook opens path with excelize and classifies failures: a missing
// file is ErrFileNotFound, filesystem errors are returned as is and
// anything else is ErrInvalidFormat.
func openWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err == nil {
		return f, nil
	}

	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case errors.As(err, &pathErr):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
}
