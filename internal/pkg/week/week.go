// Package week converts between (year, ISO week number) and calendar date
// ranges. Weeks follow ISO-8601: they start on Monday and week 1 is the week
// containing the year's first Thursday, which means January 4 always falls in
// week 1. All returned dates are UTC midnights.
package week

import (
	"fmt"
	"time"

	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
)

const (
	MinYear = 2000
	MinWeek = 1
	MaxWeek = 53
)

// Validate checks the (weekNumber, year) pair against the supported range.
// ISO years have 52 or 53 weeks; 54 is not possible.
func Validate(weekNumber, year int) error {
	var errs validator.ValidationErrors
	if year < MinYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 2000 or later"})
	}
	if weekNumber < MinWeek || weekNumber > MaxWeek {
		errs = append(errs, validator.ValidationError{Field: "week_number", Message: "week number must be between 1 and 53"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StartDate returns the Monday on which the given ISO week begins.
func StartDate(weekNumber, year int) (time.Time, error) {
	if err := Validate(weekNumber, year); err != nil {
		return time.Time{}, err
	}

	// January 4 is in week 1; step back to its Monday.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)

	start := week1Monday.AddDate(0, 0, (weekNumber-1)*7)
	if y, w := start.ISOWeek(); y != year || w != weekNumber {
		// Week 53 of a 52-week year.
		return time.Time{}, validator.ValidationErrors{{
			Field:   "week_number",
			Message: fmt.Sprintf("year %d has no week %d", year, weekNumber),
		}}
	}
	return start, nil
}

// EndDate returns the Sunday closing the week that starts on weekStart.
func EndDate(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// Of returns the ISO year and week number the given date falls in.
func Of(date time.Time) (year, weekNumber int) {
	return date.ISOWeek()
}
