package currency

import "context"

type CurrencyRepository interface {
	// GetByID resolves a currency regardless of soft-delete state; tip pools
	// keep referencing their currency after it is retired.
	GetByID(ctx context.Context, id string) (Currency, error)
	GetByCode(ctx context.Context, code string) (Currency, error)
	GetAllActive(ctx context.Context) ([]Currency, error)
	Create(ctx context.Context, c Currency) (Currency, error)
}
