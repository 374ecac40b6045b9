package tips

import (
	"time"

	"github.com/rosterhub/roster-backend-go/internal/domain/base"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
	"github.com/rosterhub/roster-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

// WeeklyTips is the tip pool collected for one ISO week. At most one pool
// exists per (year, week number) pair; the database enforces the constraint.
type WeeklyTips struct {
	base.Meta
	WeekNumber    int
	Year          int
	WeekStartDate time.Time
	TotalAmount   decimal.Decimal
	CurrencyID    string
}

func New(weekNumber, year int, weekStartDate time.Time, currencyID string, totalAmount decimal.Decimal) (WeeklyTips, error) {
	w := WeeklyTips{
		Meta:          base.NewMeta(),
		WeekNumber:    weekNumber,
		Year:          year,
		WeekStartDate: weekStartDate,
		TotalAmount:   totalAmount,
		CurrencyID:    currencyID,
	}
	if err := w.Validate(); err != nil {
		return WeeklyTips{}, err
	}
	return w, nil
}

// UpdateAmount replaces the pool total and currency.
func (w *WeeklyTips) UpdateAmount(amount decimal.Decimal, currencyID string) error {
	next := *w
	next.TotalAmount = amount
	next.CurrencyID = currencyID
	if err := next.Validate(); err != nil {
		return err
	}
	next.Touch()
	*w = next
	return nil
}

// AddAmount increments the pool total.
func (w *WeeklyTips) AddAmount(amount decimal.Decimal) error {
	next := *w
	next.TotalAmount = next.TotalAmount.Add(amount)
	if err := next.Validate(); err != nil {
		return err
	}
	next.Touch()
	*w = next
	return nil
}

func (w WeeklyTips) Validate() error {
	var errs validator.ValidationErrors
	if w.WeekNumber < week.MinWeek || w.WeekNumber > week.MaxWeek {
		errs = append(errs, validator.ValidationError{Field: "week_number", Message: "week number must be between 1 and 53"})
	}
	if w.Year < week.MinYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 2000 or later"})
	}
	if w.WeekStartDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "week_start_date", Message: "week start date cannot be empty"})
	}
	if w.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "amount cannot be negative"})
	}
	if validator.IsEmpty(w.CurrencyID) {
		errs = append(errs, validator.ValidationError{Field: "currency_id", Message: "currency id cannot be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
