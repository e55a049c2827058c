package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/multichord-go/pkg/multichord/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the port table workbook.
const (
	PortsSheet       = "Ports"
	ScalePointsSheet = "ScalePoints"
)

var portsHeader = []interface{}{"Index", "Symbol", "Name", "Types", "Minimum", "Maximum", "Default", "Properties"}

var scalePointsHeader = []interface{}{"Index", "Symbol", "Label", "Value"}

// ToWorkbook builds a workbook listing every port and every scale point.
// Event ports leave the range columns empty.
func ToWorkbook(p *models.Plugin) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", PortsSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(ScalePointsSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := setRow(f, PortsSheet, 1, portsHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := setRow(f, ScalePointsSheet, 1, scalePointsHeader); err != nil {
		f.Close()
		return nil, err
	}

	spRow := 2
	for i, port := range p.Ports {
		row := []interface{}{
			port.Index,
			port.Symbol,
			port.Name,
			strings.Join(port.Types, ", "),
			optional(port.Minimum),
			optional(port.Maximum),
			optional(port.Default),
			strings.Join(port.Properties, ", "),
		}
		if err := setRow(f, PortsSheet, i+2, row); err != nil {
			f.Close()
			return nil, fmt.Errorf("port %d: %w", port.Index, err)
		}

		for _, sp := range port.ScalePoints {
			if err := setRow(f, ScalePointsSheet, spRow, []interface{}{port.Index, port.Symbol, sp.Label, sp.Value}); err != nil {
				f.Close()
				return nil, fmt.Errorf("port %d scale point %q: %w", port.Index, sp.Label, err)
			}
			spRow++
		}
	}

	return f, nil
}

// SaveWorkbook writes the port table workbook to path.
func SaveWorkbook(p *models.Plugin, path string) error {
	f, err := ToWorkbook(p)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// setRow writes values starting at column A of the given 1-based row.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// optional returns nil for a missing bound so the cell stays empty.
func optional(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
