package employee

import "context"

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete soft-deletes the employee; their shift history stays intact.
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}
