package parser

import (
	"strings"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ReadPrintAreas returns the print areas of a workbook keyed by sheet name.
func ReadPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		// Sheet-scoped names carry the owning sheet explicitly.
		if dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses references like 'My Sheet'!$A$1:$D$10,
// possibly several separated by commas.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var (
		sheetName string
		areas     []models.PrintArea
	)

	for _, part := range strings.Split(strings.TrimPrefix(ref, "="), ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = unquoteSheetName(part[:idx])
		}
		if area, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// unquoteSheetName strips the quoting Excel applies to sheet names with
// spaces or punctuation; an embedded quote is written twice.
func unquoteSheetName(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}

// parseRange parses an absolute or relative range such as $A$1:$D$10.
func parseRange(rangeStr string) (models.PrintArea, bool) {
	start, end, found := strings.Cut(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if !found {
		return models.PrintArea{}, false
	}

	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.PrintArea{}, false
	}

	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
