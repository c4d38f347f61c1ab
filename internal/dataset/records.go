// Package dataset loads the three climate tables (temperature anomalies,
// per-country CO₂ emissions, sea-level change) from CSV or XLSX files and
// exposes them as an immutable Catalog of domain series.
package dataset

import "errors"

// ErrInvalidDataset wraps every load-time validation failure.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset base names; the file extension follows the configured format.
const (
	TemperatureFile = "temperature"
	EmissionsFile   = "co2_emissions"
	SeaLevelFile    = "sea_level"
)

// Supported file formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Required column headers.
const (
	colYear           = "Year"
	colTempAnomaly    = "Temp_Anomaly"
	colCountry        = "Country"
	colEmissions      = "Emissions"
	colSeaLevelChange = "Sea_Level_Change"
)

// TemperatureRecord is one row of the temperature table.
type TemperatureRecord struct {
	Year        int     `json:"year" yaml:"year"`
	TempAnomaly float64 `json:"temp_anomaly" yaml:"temp_anomaly"` // °C vs. baseline
}

// EmissionRecord is one row of the CO₂ emissions table.
type EmissionRecord struct {
	Country   string  `json:"country" yaml:"country"`
	Year      int     `json:"year" yaml:"year"`
	Emissions float64 `json:"emissions" yaml:"emissions"` // MtCO₂
}

// SeaLevelRecord is one row of the sea-level table.
type SeaLevelRecord struct {
	Year           int     `json:"year" yaml:"year"`
	SeaLevelChange float64 `json:"sea_level_change" yaml:"sea_level_change"` // mm
}

// RowCounts reports how many rows each table contributed.
type RowCounts struct {
	Temperature int `json:"temperature" yaml:"temperature"`
	Emissions   int `json:"emissions" yaml:"emissions"`
	SeaLevel    int `json:"sea_level" yaml:"sea_level"`
}
