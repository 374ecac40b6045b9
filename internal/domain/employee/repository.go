package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID resolves the employee regardless of soft-delete state so that
	// historical shift references keep working.
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetAllActive returns the roster excluding soft-deleted employees.
	GetAllActive(ctx context.Context) ([]Employee, error)

	// Update persists the full entity state, including soft-delete marks.
	Update(ctx context.Context, e Employee) error
}
