package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/xuri/excelize/v2"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		areas []models.PrintArea
	}{
		{
			ref:   "Sheet1!$A$1:$D$10",
			sheet: "Sheet1",
			areas: []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}},
		},
		{
			ref:   "'My Sheet'!$B$2:$C$3",
			sheet: "My Sheet",
			areas: []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}},
		},
		{
			ref:   "='Bob''s'!A1:B2,'Bob''s'!D4:E5",
			sheet: "Bob's",
			areas: []models.PrintArea{
				{R1: 1, C1: 1, R2: 2, C2: 2},
				{R1: 4, C1: 4, R2: 5, C2: 5},
			},
		},
		{
			ref:   "Sheet1!$A:$C",
			sheet: "Sheet1",
		},
		{
			ref: "$A$1:$B$2",
		},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.sheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.sheet)
		}
		if !reflect.DeepEqual(areas, tt.areas) {
			t.Errorf("parsePrintAreaReference(%q) areas = %v, expected %v", tt.ref, areas, tt.areas)
		}
	}
}

func TestReadPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Report"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Report!$A$1:$C$5",
		Scope:    "Report",
	}); err != nil {
		t.Fatalf("Failed to set print area: %v", err)
	}

	areas := ReadPrintAreas(f)
	if _, ok := areas["Sheet1"]; ok {
		t.Error("Expected no print area for Sheet1")
	}
	expected := []models.PrintArea{{R1: 1, C1: 1, R2: 5, C2: 3}}
	if !reflect.DeepEqual(areas["Report"], expected) {
		t.Errorf("Expected %v, got %v", expected, areas["Report"])
	}
}
