package employee

import (
	"context"
	"errors"

	"github.com/rosterhub/roster-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := employee.New(req.FirstName, req.LastName, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.activeByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != emp.Email {
		if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := emp.UpdateDetails(req.FirstName, req.LastName, req.Email); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Delete implements employee.EmployeeService. The record is soft-deleted so
// past shifts keep resolving to a name.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.activeByID(ctx, id)
	if err != nil {
		return err
	}

	emp.Meta.Delete()
	return s.employeeRepo.Update(ctx, emp)
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.activeByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// activeByID hides soft-deleted employees from the public surface. The
// repository still resolves them for historical joins.
func (s *EmployeeServiceImpl) activeByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.IsDeleted() {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}
