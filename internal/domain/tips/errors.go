package tips

import "errors"

var (
	ErrWeeklyTipsNotFound = errors.New("no tips recorded for the requested week")
	ErrWeeklyTipsExists   = errors.New("tips already recorded for the requested week")

	// ErrCurrencyMissing means a stored tip pool references a currency id
	// that does not resolve. Externally it reads as not-found; internally it
	// is a referential-integrity fault and is logged as such.
	ErrCurrencyMissing = errors.New("weekly tips reference a missing currency")
)
