package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
)

// Loader reads and validates the three dataset files from a Source.
type Loader struct {
	source Source
	format string
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewLoader creates a Loader for files of the given format (csv or xlsx).
func NewLoader(source Source, format string, logger *slog.Logger) *Loader {
	return &Loader{
		source: source,
		format: format,
		clock:  clockwork.NewRealClock(),
		logger: logger,
	}
}

// WithClock returns a copy of the loader that stamps catalogs using c.
func (l *Loader) WithClock(c clockwork.Clock) *Loader {
	cp := *l
	cp.clock = c
	return &cp
}

// Load reads all three tables and builds the catalog.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	tempTable, err := l.readTable(ctx, TemperatureFile)
	if err != nil {
		return nil, err
	}
	temps, err := parseTemperature(tempTable)
	if err != nil {
		return nil, err
	}

	emissionsTable, err := l.readTable(ctx, EmissionsFile)
	if err != nil {
		return nil, err
	}
	emissions, err := parseEmissions(emissionsTable)
	if err != nil {
		return nil, err
	}

	seaTable, err := l.readTable(ctx, SeaLevelFile)
	if err != nil {
		return nil, err
	}
	sea, err := parseSeaLevel(seaTable)
	if err != nil {
		return nil, err
	}

	catalog, err := NewCatalog(temps, emissions, sea, l.clock.Now())
	if err != nil {
		return nil, err
	}

	l.logger.Info("datasets loaded",
		"source", l.source.String(),
		"format", l.format,
		"temperature_rows", len(temps),
		"emissions_rows", len(emissions),
		"sea_level_rows", len(sea),
		"countries", len(catalog.Countries()),
	)
	return catalog, nil
}

func (l *Loader) readTable(ctx context.Context, base string) (*table, error) {
	name := base + "." + l.format

	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	defer rc.Close()

	return readTable(name, rc, l.format)
}
