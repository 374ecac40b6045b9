package tips

import "context"

type WeeklyTipsRepository interface {
	// GetByWeek returns ErrWeeklyTipsNotFound when no pool exists for the
	// (week, year) pair.
	GetByWeek(ctx context.Context, weekNumber, year int) (WeeklyTips, error)
	GetByYear(ctx context.Context, year int) ([]WeeklyTips, error)
	GetByID(ctx context.Context, id string) (WeeklyTips, error)

	// Create returns ErrWeeklyTipsExists when a pool for the same
	// (year, week) pair already exists.
	Create(ctx context.Context, w WeeklyTips) (WeeklyTips, error)
	Update(ctx context.Context, w WeeklyTips) error
}
