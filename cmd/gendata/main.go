// Command gendata converts the climate datasets between CSV and XLSX. It
// reads through the service's own loader, so the output is guaranteed to
// load back exactly as the input did.
//
// Usage:
//
//	go run ./cmd/gendata -in data -in-format csv -out data/xlsx -out-format xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/couchcryptid/climate-pulse/internal/dataset"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inDir := flag.String("in", "data", "directory containing the source datasets")
	inFormat := flag.String("in-format", dataset.FormatCSV, "source format: csv or xlsx")
	outDir := flag.String("out", "", "output directory")
	outFormat := flag.String("out-format", dataset.FormatXLSX, "output format: csv or xlsx")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	catalog, err := dataset.NewLoader(dataset.NewDirSource(*inDir), *inFormat, logger).Load(context.Background())
	if err != nil {
		return fmt.Errorf("load %s: %w", *inDir, err)
	}

	if err := dataset.Export(catalog, *outDir, *outFormat); err != nil {
		return err
	}

	rows := catalog.Rows()
	log.Printf("temperature: %d rows", rows.Temperature)
	log.Printf("co2_emissions: %d rows (%d countries)", rows.Emissions, len(catalog.Countries()))
	log.Printf("sea_level: %d rows", rows.SeaLevel)
	log.Printf("wrote %s datasets to %s", *outFormat, *outDir)
	return nil
}
