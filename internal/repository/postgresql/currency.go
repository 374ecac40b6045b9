package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rosterhub/roster-backend-go/internal/domain/currency"
	"github.com/rosterhub/roster-backend-go/internal/pkg/database"
)

type currencyRepositoryImpl struct {
	db *database.DB
}

func NewCurrencyRepository(db *database.DB) currency.CurrencyRepository {
	return &currencyRepositoryImpl{db: db}
}

const currencyColumns = `id, code, symbol, name, created_at, updated_at, deleted_at`

func scanCurrency(row pgx.Row) (currency.Currency, error) {
	var c currency.Currency
	err := row.Scan(&c.ID, &c.Code, &c.Symbol, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	return c, err
}

// GetByID implements currency.CurrencyRepository. Soft-deleted currencies are
// still returned so existing tip pools keep resolving.
func (r *currencyRepositoryImpl) GetByID(ctx context.Context, id string) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1`

	c, err := scanCurrency(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return currency.Currency{}, currency.ErrCurrencyNotFound
		}
		return currency.Currency{}, fmt.Errorf("get currency by id: %w", err)
	}

	return c, nil
}

// GetByCode implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) GetByCode(ctx context.Context, code string) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1 AND deleted_at IS NULL`

	c, err := scanCurrency(q.QueryRow(ctx, query, strings.ToUpper(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return currency.Currency{}, currency.ErrCurrencyNotFound
		}
		return currency.Currency{}, fmt.Errorf("get currency by code: %w", err)
	}

	return c, nil
}

// GetAllActive implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) GetAllActive(ctx context.Context) ([]currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE deleted_at IS NULL ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	var currencies []currency.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return currencies, nil
}

// Create implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) Create(ctx context.Context, c currency.Currency) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query, c.ID, c.Code, c.Symbol, c.Name, c.CreatedAt, c.UpdatedAt, c.DeletedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return currency.Currency{}, currency.ErrCodeExists
		}
		return currency.Currency{}, fmt.Errorf("create currency: %w", err)
	}

	return c, nil
}
