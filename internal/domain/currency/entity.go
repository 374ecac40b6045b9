package currency

import (
	"strings"

	"github.com/rosterhub/roster-backend-go/internal/domain/base"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
)

type Currency struct {
	base.Meta
	Code   string
	Symbol string
	Name   string
}

// New builds a validated currency. The code is stored upper-cased.
func New(code, symbol, name string) (Currency, error) {
	c := Currency{
		Meta:   base.NewMeta(),
		Code:   strings.ToUpper(strings.TrimSpace(code)),
		Symbol: symbol,
		Name:   name,
	}
	if err := c.Validate(); err != nil {
		return Currency{}, err
	}
	return c, nil
}

func (c Currency) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidCurrencyCode(c.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "currency code must be 3 letters"})
	}
	if validator.IsEmpty(c.Symbol) {
		errs = append(errs, validator.ValidationError{Field: "symbol", Message: "symbol cannot be empty"})
	}
	if validator.IsEmpty(c.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
