package tips

import (
	"context"

	"github.com/rosterhub/roster-backend-go/internal/domain/currency"
)

// TipsService defines business logic for weekly tip pools and their
// distribution across employees.
type TipsService interface {
	// GetWeeklyDistribution splits the week's pool across the employees who
	// worked shifts that week, proportionally to hours worked.
	GetWeeklyDistribution(ctx context.Context, weekNumber, year int) (TipDistributionResponse, error)

	GetWeeklyTips(ctx context.Context, weekNumber, year int) (WeeklyTipsResponse, error)

	// RecordTips creates the pool for the week or adds to its amount.
	RecordTips(ctx context.Context, req RecordTipsRequest) (WeeklyTipsResponse, error)
	UpdateTips(ctx context.Context, id string, req UpdateTipsRequest) (WeeklyTipsResponse, error)

	ListCurrencies(ctx context.Context) ([]currency.CurrencyResponse, error)
}
