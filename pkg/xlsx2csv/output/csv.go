// Package output serializes sheet tables as CSV.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
)

// WriteCSV writes the header line followed by the data rows. No row index
// column is added. An empty table writes nothing.
func WriteCSV(w io.Writer, t *models.Table, comma rune) error {
	if t.Empty() {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteFile creates (or truncates) path and writes t to it as CSV.
func WriteFile(path string, t *models.Table, comma rune) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteCSV(f, t, comma); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// unsafeNameChars are replaced when sanitizing a sheet name for use as a
// file name.
const unsafeNameChars = `/\:*?"<>|`

// FileName maps a sheet name to its CSV file name. Without sanitize the
// sheet name is used verbatim.
func FileName(sheetName string, sanitize bool) string {
	if sanitize {
		sheetName = SanitizeName(sheetName)
	}
	return sheetName + ".csv"
}

// SanitizeName replaces path separators, reserved characters and control
// characters with underscores.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(unsafeNameChars, r) {
			return '_'
		}
		return r
	}, name)
}
