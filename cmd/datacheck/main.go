// Command datacheck loads a climate dataset directory (or base URL), runs
// integrity checks over it, and prints a summary report. It exits non-zero
// when any check fails.
//
// Usage:
//
//	go run ./cmd/datacheck -dir data -format csv -output yaml
//	go run ./cmd/datacheck -url https://example.org/climate -output json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/climate-pulse/internal/dataset"
	"github.com/couchcryptid/climate-pulse/internal/domain"
)

const (
	// horizon is the projection year used for the scenario sanity phase.
	horizon        = 2100
	defaultTimeout = 30 * time.Second
)

type options struct {
	dir     string
	url     string
	format  string
	output  string
	timeout time.Duration
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	Name   string   `yaml:"name" json:"name"`
	Errors []string `yaml:"errors,omitempty" json:"errors,omitempty"`
}

func (p *phase) errorf(format string, args ...any) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.Errors) == 0 }

type seriesReport struct {
	Name                string  `yaml:"name" json:"name"`
	Points              int     `yaml:"points" json:"points"`
	FirstYear           int     `yaml:"first_year" json:"first_year"`
	LastYear            int     `yaml:"last_year" json:"last_year"`
	Slope               float64 `yaml:"slope" json:"slope"`
	RSquared            float64 `yaml:"r_squared" json:"r_squared"`
	AverageAnnualChange float64 `yaml:"average_annual_change" json:"average_annual_change"`
}

type projectionReport struct {
	Scenario    string  `yaml:"scenario" json:"scenario"`
	TargetYear  int     `yaml:"target_year" json:"target_year"`
	FinalValue  float64 `yaml:"final_value" json:"final_value"`
	Temperature float64 `yaml:"temperature_increase" json:"temperature_increase"`
	SeaLevel    float64 `yaml:"sea_level_increase" json:"sea_level_increase"`
	Impact      string  `yaml:"impact_level" json:"impact_level"`
}

type report struct {
	Source      string             `yaml:"source" json:"source"`
	Format      string             `yaml:"format" json:"format"`
	Rows        dataset.RowCounts  `yaml:"rows" json:"rows"`
	Countries   []string           `yaml:"countries" json:"countries"`
	Series      []seriesReport     `yaml:"series" json:"series"`
	Projections []projectionReport `yaml:"projections" json:"projections"`
	Phases      []*phase           `yaml:"phases" json:"phases"`
	Passed      bool               `yaml:"passed" json:"passed"`
}

func main() {
	var opts options
	flag.StringVar(&opts.dir, "dir", "data", "directory containing the datasets")
	flag.StringVar(&opts.url, "url", "", "base URL to fetch the datasets from (overrides -dir)")
	flag.StringVar(&opts.format, "format", dataset.FormatCSV, "dataset format: csv or xlsx")
	flag.StringVar(&opts.output, "output", "yaml", "report format: yaml or json")
	flag.DurationVar(&opts.timeout, "timeout", defaultTimeout, "overall load timeout")
	flag.Parse()

	os.Exit(run(opts, os.Stdout, os.Stderr))
}

func run(opts options, stdout, stderr io.Writer) int {
	if opts.output != "yaml" && opts.output != "json" {
		fmt.Fprintf(stderr, "invalid -output %q: must be yaml or json\n", opts.output)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	var source dataset.Source = dataset.NewDirSource(opts.dir)
	if opts.url != "" {
		source = dataset.NewHTTPSource(opts.url, opts.timeout, logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	rep := &report{Source: source.String(), Format: opts.format}

	// ── Phase 1: load ──
	load := &phase{Name: "Phase 1: Load & schema"}
	rep.Phases = append(rep.Phases, load)
	catalog, err := dataset.NewLoader(source, opts.format, logger).Load(ctx)
	if err != nil {
		load.errorf("%v", err)
	} else {
		rep.Rows = catalog.Rows()
		rep.Countries = catalog.Countries()
		rep.Phases = append(rep.Phases,
			checkCoverage(catalog),
			checkTrends(catalog, rep),
			checkProjections(catalog, rep),
		)
	}

	rep.Passed = true
	for _, p := range rep.Phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.Errors))
			rep.Passed = false
		}
		fmt.Fprintf(stderr, "  %-36s %s\n", p.Name, status)
		for i, e := range p.Errors {
			fmt.Fprintf(stderr, "    [%d] %s\n", i+1, e)
		}
	}

	if err := writeReport(stdout, opts.output, rep); err != nil {
		fmt.Fprintf(stderr, "write report: %v\n", err)
		return 1
	}
	if !rep.Passed {
		return 1
	}
	return 0
}

func writeReport(w io.Writer, format string, rep *report) error {
	if format == "json" {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

// ── Phase 2: coverage ──
// Every country must report the latest year, or the aggregate baseline for
// projections silently undercounts.

func checkCoverage(c *dataset.Catalog) *phase {
	p := &phase{Name: "Phase 2: Series coverage"}

	latest, ok := c.AggregateEmissions().Last()
	if !ok {
		p.errorf("aggregate emissions series is empty")
		return p
	}
	for _, country := range c.Countries() {
		series, _ := c.Emissions(country)
		last, _ := series.Last()
		if last.Year != latest.Year {
			p.errorf("%s: last year %d, aggregate baseline year is %d", country, last.Year, latest.Year)
		}
		for _, pt := range series.Points() {
			if pt.Value < 0 {
				p.errorf("%s %d: negative emissions %g", country, pt.Year, pt.Value)
			}
		}
	}
	return p
}

// ── Phase 3: trends ──

func checkTrends(c *dataset.Catalog, rep *report) *phase {
	p := &phase{Name: "Phase 3: Trend fits"}

	named := []struct {
		name   string
		series domain.TimeSeries
	}{
		{"temperature", c.Temperature()},
		{"sea_level", c.SeaLevel()},
		{"emissions_total", c.AggregateEmissions()},
	}
	for _, country := range c.Countries() {
		s, _ := c.Emissions(country)
		named = append(named, struct {
			name   string
			series domain.TimeSeries
		}{"emissions_" + country, s})
	}

	for _, n := range named {
		trend, err := domain.Fit(n.series)
		if err != nil {
			p.errorf("%s: %v", n.name, err)
			continue
		}
		avg, err := domain.AverageAnnualChange(n.series)
		if err != nil {
			p.errorf("%s: %v", n.name, err)
			continue
		}
		if math.IsNaN(trend.Slope) || math.IsNaN(trend.RSquared) {
			p.errorf("%s: degenerate fit (slope %g, r² %g)", n.name, trend.Slope, trend.RSquared)
		}
		first, _ := n.series.First()
		last, _ := n.series.Last()
		rep.Series = append(rep.Series, seriesReport{
			Name:                n.name,
			Points:              n.series.Len(),
			FirstYear:           first.Year,
			LastYear:            last.Year,
			Slope:               trend.Slope,
			RSquared:            trend.RSquared,
			AverageAnnualChange: avg,
		})
	}
	return p
}

// ── Phase 4: projections ──
// Business as usual must never fall; the reduction scenarios must never rise.

func checkProjections(c *dataset.Catalog, rep *report) *phase {
	p := &phase{Name: "Phase 4: Scenario projections"}

	for _, scenario := range domain.Scenarios() {
		result, err := domain.Project(c.AggregateEmissions(), scenario, horizon)
		if err != nil {
			p.errorf("%s: %v", scenario, err)
			continue
		}
		points := result.Projected.Points()
		for i, pt := range points {
			if math.IsNaN(pt.Value) || math.IsInf(pt.Value, 0) || pt.Value < 0 {
				p.errorf("%s %d: invalid projected value %g", scenario, pt.Year, pt.Value)
			}
			if i == 0 {
				continue
			}
			prev := points[i-1].Value
			if scenario == domain.BusinessAsUsual && pt.Value < prev {
				p.errorf("%s %d: projection fell from %g to %g", scenario, pt.Year, prev, pt.Value)
			}
			if scenario != domain.BusinessAsUsual && pt.Value > prev {
				p.errorf("%s %d: projection rose from %g to %g", scenario, pt.Year, prev, pt.Value)
			}
		}

		pr := projectionReport{
			Scenario:    scenario.String(),
			TargetYear:  horizon,
			Temperature: result.TemperatureIncrease,
			SeaLevel:    result.SeaLevelIncrease,
			Impact:      result.Impact.String(),
		}
		if last, ok := result.Projected.Last(); ok {
			pr.FinalValue = last.Value
		}
		rep.Projections = append(rep.Projections, pr)
	}
	return p
}
