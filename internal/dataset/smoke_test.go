//go:build remote

package dataset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests fetch the datasets from a real host and require DATA_BASE_URL.
// Run with: go test -tags=remote ./internal/dataset/ -v -count=1

func smokeSource(t *testing.T) *HTTPSource {
	t.Helper()
	baseURL := os.Getenv("DATA_BASE_URL")
	if baseURL == "" {
		t.Fatal("DATA_BASE_URL must be set to run smoke tests")
	}
	return NewHTTPSource(baseURL, 10*time.Second, discardLogger())
}

func smokeFormat() string {
	if f := os.Getenv("DATA_FORMAT"); f != "" {
		return f
	}
	return FormatCSV
}

func TestSmoke_LoadRemote(t *testing.T) {
	catalog, err := NewLoader(smokeSource(t), smokeFormat(), discardLogger()).Load(context.Background())
	require.NoError(t, err)

	rows := catalog.Rows()
	assert.Positive(t, rows.Temperature)
	assert.Positive(t, rows.Emissions)
	assert.Positive(t, rows.SeaLevel)
	assert.NotEmpty(t, catalog.Countries())
}

func TestSmoke_MissingFile(t *testing.T) {
	_, err := smokeSource(t).Open(context.Background(), "does-not-exist.csv")
	require.Error(t, err)
}
