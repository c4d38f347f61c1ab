package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// table is a header row plus data rows, with columns resolved by name.
type table struct {
	name   string
	header map[string]int
	rows   [][]string
}

// readTable parses r as CSV or XLSX (first sheet). The first row is the header.
func readTable(name string, r io.Reader, format string) (*table, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%s: unsupported format %q: %w", name, format, ErrInvalidDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row: %w", name, ErrInvalidDataset)
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows: %w", name, ErrInvalidDataset)
	}

	return &table{name: name, header: header, rows: rows}, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets: %w", ErrInvalidDataset)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// requireColumns fails if any named column is missing from the header.
func (t *table) requireColumns(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if _, ok := t.header[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing columns %s: %w", t.name, strings.Join(missing, ", "), ErrInvalidDataset)
	}
	return nil
}

// cell returns the trimmed value of col in data row i (0-based).
func (t *table) cell(i int, col string) string {
	idx := t.header[col]
	row := t.rows[i]
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowErr reports a bad cell using the 1-based file line, counting the header.
func (t *table) rowErr(i int, col, value, reason string) error {
	return fmt.Errorf("%s row %d column %s %q: %s: %w", t.name, i+2, col, value, reason, ErrInvalidDataset)
}

// Years outside this range are rejected as malformed.
const (
	minYear = 1
	maxYear = 9999
)

func (t *table) year(i int) (int, error) {
	v := t.cell(i, colYear)
	n, err := strconv.Atoi(v)
	if err != nil {
		// Spreadsheets sometimes store years as floats ("1880.0").
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != math.Trunc(f) || f < minYear || f > maxYear {
			return 0, t.rowErr(i, colYear, v, "not an integer year")
		}
		n = int(f)
	}
	if n < minYear || n > maxYear {
		return 0, t.rowErr(i, colYear, v, "year out of range")
	}
	return n, nil
}

func (t *table) float(i int, col string) (float64, error) {
	v := t.cell(i, col)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, t.rowErr(i, col, v, "not a number")
	}
	return f, nil
}

func (t *table) text(i int, col string) (string, error) {
	v := t.cell(i, col)
	if v == "" {
		return "", t.rowErr(i, col, v, "empty")
	}
	return v, nil
}

func parseTemperature(t *table) ([]TemperatureRecord, error) {
	if err := t.requireColumns(colYear, colTempAnomaly); err != nil {
		return nil, err
	}
	out := make([]TemperatureRecord, 0, len(t.rows))
	for i := range t.rows {
		year, err := t.year(i)
		if err != nil {
			return nil, err
		}
		v, err := t.float(i, colTempAnomaly)
		if err != nil {
			return nil, err
		}
		out = append(out, TemperatureRecord{Year: year, TempAnomaly: v})
	}
	return out, nil
}

func parseEmissions(t *table) ([]EmissionRecord, error) {
	if err := t.requireColumns(colCountry, colYear, colEmissions); err != nil {
		return nil, err
	}
	out := make([]EmissionRecord, 0, len(t.rows))
	for i := range t.rows {
		country, err := t.text(i, colCountry)
		if err != nil {
			return nil, err
		}
		year, err := t.year(i)
		if err != nil {
			return nil, err
		}
		v, err := t.float(i, colEmissions)
		if err != nil {
			return nil, err
		}
		out = append(out, EmissionRecord{Country: country, Year: year, Emissions: v})
	}
	return out, nil
}

func parseSeaLevel(t *table) ([]SeaLevelRecord, error) {
	if err := t.requireColumns(colYear, colSeaLevelChange); err != nil {
		return nil, err
	}
	out := make([]SeaLevelRecord, 0, len(t.rows))
	for i := range t.rows {
		year, err := t.year(i)
		if err != nil {
			return nil, err
		}
		v, err := t.float(i, colSeaLevelChange)
		if err != nil {
			return nil, err
		}
		out = append(out, SeaLevelRecord{Year: year, SeaLevelChange: v})
	}
	return out, nil
}
