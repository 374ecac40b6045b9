package currency

import "errors"

var (
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrCodeExists       = errors.New("currency code already exists")
)
