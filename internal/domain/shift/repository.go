package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByDateRange returns active shifts with start <= date <= end.
	// Callers derive the range from the week calendar.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Shift, error)
	GetByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Shift, error)

	// Update persists the full entity state, including soft-delete marks.
	Update(ctx context.Context, s Shift) error
}
