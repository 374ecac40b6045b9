package shift

import "context"

// ShiftService defines business logic for shifts and the weekly roster.
type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (ShiftResponse, error)

	// GetByWeek lists the shifts recorded in the given ISO week with employee
	// names resolved ("N/A" when the employee record is gone).
	GetByWeek(ctx context.Context, weekNumber, year int) ([]ShiftResponse, error)

	// GetWeeklyRoster summarises the week for every active employee,
	// including those with no shifts.
	GetWeeklyRoster(ctx context.Context, weekNumber, year int) (WeeklyRosterResponse, error)

	// GetEmployeeWeek summarises one employee's week.
	GetEmployeeWeek(ctx context.Context, employeeID string, weekNumber, year int) (EmployeeWeekResponse, error)
}
