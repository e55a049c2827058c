package output

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/multichord-go/pkg/multichord/builder"
	"github.com/xuri/excelize/v2"
)

func TestSaveWorkbook(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "ports.xlsx")
	if err := SaveWorkbook(builder.Plugin(), tmpFile); err != nil {
		t.Fatalf("SaveWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(PortsSheet)
	if err != nil {
		t.Fatalf("GetRows(%s) failed: %v", PortsSheet, err)
	}
	if len(rows) != 99 {
		t.Fatalf("Expected header plus 98 port rows, got %d", len(rows))
	}
	if rows[0][1] != "Symbol" {
		t.Errorf("Expected header 'Symbol', got %q", rows[0][1])
	}

	// Row for index 6: group 1, voice 0
	if rows[7][0] != "6" || rows[7][1] != "offset_cs1" || rows[7][2] != "Offset C#:1" {
		t.Errorf("Unexpected offset row: %v", rows[7])
	}
	if rows[7][4] != "-12" || rows[7][5] != "12" || rows[7][6] != "0" {
		t.Errorf("Unexpected offset bounds: %v", rows[7][4:7])
	}
	if rows[98][1] != "velocity_b4" || rows[98][4] != "0.5" || rows[98][5] != "2" || rows[98][6] != "1" {
		t.Errorf("Unexpected velocity row: %v", rows[98])
	}

	points, err := f.GetRows(ScalePointsSheet)
	if err != nil {
		t.Fatalf("GetRows(%s) failed: %v", ScalePointsSheet, err)
	}
	if len(points) != 1+48*25 {
		t.Errorf("Expected %d scale point rows, got %d", 1+48*25, len(points))
	}
	if points[1][1] != "offset_c1" || points[1][2] != "-C" || points[1][3] != "-12" {
		t.Errorf("Unexpected first scale point: %v", points[1])
	}
}
