package shift

import (
	"time"
	"unicode/utf8"

	"github.com/rosterhub/roster-backend-go/internal/domain/base"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
)

const maxNotesLength = 500

type Shift struct {
	base.Meta
	EmployeeID string
	Date       time.Time // calendar date, midnight UTC
	StartTime  time.Time
	EndTime    time.Time
	Notes      *string
}

func New(employeeID string, date, startTime, endTime time.Time, notes *string) (Shift, error) {
	s := Shift{
		Meta:       base.NewMeta(),
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Notes:      notes,
	}
	if err := s.Validate(); err != nil {
		return Shift{}, err
	}
	return s, nil
}

// HoursWorked is derived on read, never stored.
func (s Shift) HoursWorked() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// Update replaces the shift's schedule. The entity is left untouched when
// validation fails.
func (s *Shift) Update(date, startTime, endTime time.Time, notes *string) error {
	next := *s
	next.Date = date
	next.StartTime = startTime
	next.EndTime = endTime
	next.Notes = notes
	if err := next.Validate(); err != nil {
		return err
	}
	next.Touch()
	*s = next
	return nil
}

func (s Shift) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(s.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id cannot be empty"})
	}
	if s.Date.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "shift date cannot be empty"})
	}
	if !s.StartTime.Before(s.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be earlier than end time"})
	}
	if s.EndTime.Sub(s.StartTime) > 24*time.Hour {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "shift duration cannot exceed 24 hours"})
	}
	if s.Notes != nil && utf8.RuneCountInString(*s.Notes) > maxNotesLength {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "notes cannot exceed 500 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
