package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectionEvent(t *testing.T) {
	frozen := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	result, err := Project(historyEnding(2020, 100), BusinessAsUsual, 2030)
	require.NoError(t, err)

	event := NewProjectionEvent(result)
	_, err = uuid.Parse(event.ID)
	require.NoError(t, err)
	assert.Equal(t, frozen, event.ComputedAt)
	assert.Equal(t, result, event.Result)

	other := NewProjectionEvent(result)
	assert.NotEqual(t, event.ID, other.ID)
}
