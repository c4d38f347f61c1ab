package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectionEvent records one computed projection for downstream consumers.
type ProjectionEvent struct {
	ID         string           `json:"id"`
	ComputedAt time.Time        `json:"computed_at"`
	Result     ProjectionResult `json:"result"`
}

// NewProjectionEvent stamps result with a fresh ID and the current time.
func NewProjectionEvent(result ProjectionResult) ProjectionEvent {
	return ProjectionEvent{
		ID:         uuid.New().String(),
		ComputedAt: clock.Now().UTC(),
		Result:     result,
	}
}
