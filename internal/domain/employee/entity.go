package employee

import (
	"github.com/rosterhub/roster-backend-go/internal/domain/base"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
)

type Employee struct {
	base.Meta
	FirstName string
	LastName  string
	Email     string
}

func New(firstName, lastName, email string) (Employee, error) {
	e := Employee{
		Meta:      base.NewMeta(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// UpdateDetails replaces the employee's names and email. The entity is left
// untouched when validation fails.
func (e *Employee) UpdateDetails(firstName, lastName, email string) error {
	next := *e
	next.FirstName = firstName
	next.LastName = lastName
	next.Email = email
	if err := next.Validate(); err != nil {
		return err
	}
	next.Touch()
	*e = next
	return nil
}

func (e Employee) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(e.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name cannot be empty"})
	}
	if validator.IsEmpty(e.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name cannot be empty"})
	}
	if !validator.IsValidEmail(e.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid address"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
