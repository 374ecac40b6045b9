package response

import (
	"errors"
	"net/http"

	"github.com/rosterhub/roster-backend-go/internal/domain/currency"
	"github.com/rosterhub/roster-backend-go/internal/domain/employee"
	"github.com/rosterhub/roster-backend-go/internal/domain/shift"
	"github.com/rosterhub/roster-backend-go/internal/domain/tips"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Tips domain errors
	case errors.Is(err, tips.ErrWeeklyTipsNotFound):
		NotFound(w, "No tips recorded for this week")
	case errors.Is(err, tips.ErrWeeklyTipsExists):
		Conflict(w, "Tips already recorded for this week")
	case errors.Is(err, tips.ErrCurrencyMissing):
		InternalServerError(w, "Tip pool references an unknown currency")

	// Currency domain errors
	case errors.Is(err, currency.ErrCurrencyNotFound):
		NotFound(w, "Currency not found")
	case errors.Is(err, currency.ErrCodeExists):
		Conflict(w, "Currency code already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
