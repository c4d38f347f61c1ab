package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/climate-pulse/internal/domain"
)

// Export writes the catalog's three tables into dir in the given format,
// using the same file names and headers Load expects.
func Export(c *Catalog, dir, format string) error {
	if format != FormatCSV && format != FormatXLSX {
		return fmt.Errorf("export: unsupported format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	tables := []struct {
		base string
		rows [][]any
	}{
		{TemperatureFile, seriesRows(colTempAnomaly, c.Temperature().Points())},
		{EmissionsFile, emissionRows(c)},
		{SeaLevelFile, seriesRows(colSeaLevelChange, c.SeaLevel().Points())},
	}
	for _, t := range tables {
		path := filepath.Join(dir, t.base+"."+format)
		var err error
		if format == FormatXLSX {
			err = writeXLSX(path, t.base, t.rows)
		} else {
			err = writeCSV(path, t.rows)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
	}
	return nil
}

func seriesRows(valueCol string, points []domain.Point) [][]any {
	rows := make([][]any, 0, len(points)+1)
	rows = append(rows, []any{colYear, valueCol})
	for _, p := range points {
		rows = append(rows, []any{p.Year, p.Value})
	}
	return rows
}

func emissionRows(c *Catalog) [][]any {
	rows := [][]any{{colCountry, colYear, colEmissions}}
	for _, country := range c.Countries() {
		series, _ := c.Emissions(country)
		for _, p := range series.Points() {
			rows = append(rows, []any{country, p.Year, p.Value})
		}
	}
	return rows
}

func writeCSV(path string, rows [][]any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = formatCell(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func writeXLSX(path, sheet string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
