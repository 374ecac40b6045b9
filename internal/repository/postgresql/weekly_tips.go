package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rosterhub/roster-backend-go/internal/domain/tips"
	"github.com/rosterhub/roster-backend-go/internal/pkg/database"
)

type weeklyTipsRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyTipsRepository(db *database.DB) tips.WeeklyTipsRepository {
	return &weeklyTipsRepositoryImpl{db: db}
}

const weeklyTipsColumns = `id, week_number, year, week_start_date, total_amount, currency_id, created_at, updated_at, deleted_at`

func scanWeeklyTips(row pgx.Row) (tips.WeeklyTips, error) {
	var w tips.WeeklyTips
	err := row.Scan(&w.ID, &w.WeekNumber, &w.Year, &w.WeekStartDate, &w.TotalAmount, &w.CurrencyID, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt)
	return w, err
}

// GetByWeek implements tips.WeeklyTipsRepository.
func (r *weeklyTipsRepositoryImpl) GetByWeek(ctx context.Context, weekNumber, year int) (tips.WeeklyTips, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + weeklyTipsColumns + `
		FROM weekly_tips
		WHERE week_number = $1 AND year = $2 AND deleted_at IS NULL
	`

	w, err := scanWeeklyTips(q.QueryRow(ctx, query, weekNumber, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tips.WeeklyTips{}, tips.ErrWeeklyTipsNotFound
		}
		return tips.WeeklyTips{}, fmt.Errorf("get weekly tips: %w", err)
	}

	return w, nil
}

// GetByYear implements tips.WeeklyTipsRepository.
func (r *weeklyTipsRepositoryImpl) GetByYear(ctx context.Context, year int) ([]tips.WeeklyTips, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + weeklyTipsColumns + `
		FROM weekly_tips
		WHERE year = $1 AND deleted_at IS NULL
		ORDER BY week_number
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("list weekly tips by year: %w", err)
	}
	defer rows.Close()

	var pools []tips.WeeklyTips
	for rows.Next() {
		w, err := scanWeeklyTips(rows)
		if err != nil {
			return nil, err
		}
		pools = append(pools, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pools, nil
}

// GetByID implements tips.WeeklyTipsRepository.
func (r *weeklyTipsRepositoryImpl) GetByID(ctx context.Context, id string) (tips.WeeklyTips, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + weeklyTipsColumns + ` FROM weekly_tips WHERE id = $1 AND deleted_at IS NULL`

	w, err := scanWeeklyTips(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tips.WeeklyTips{}, tips.ErrWeeklyTipsNotFound
		}
		return tips.WeeklyTips{}, fmt.Errorf("get weekly tips by id: %w", err)
	}

	return w, nil
}

// Create implements tips.WeeklyTipsRepository. The (year, week_number) unique
// constraint guarantees at most one pool per week.
func (r *weeklyTipsRepositoryImpl) Create(ctx context.Context, w tips.WeeklyTips) (tips.WeeklyTips, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_tips (` + weeklyTipsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query, w.ID, w.WeekNumber, w.Year, w.WeekStartDate, w.TotalAmount, w.CurrencyID, w.CreatedAt, w.UpdatedAt, w.DeletedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return tips.WeeklyTips{}, tips.ErrWeeklyTipsExists
		}
		return tips.WeeklyTips{}, fmt.Errorf("create weekly tips: %w", err)
	}

	return w, nil
}

// Update implements tips.WeeklyTipsRepository.
func (r *weeklyTipsRepositoryImpl) Update(ctx context.Context, w tips.WeeklyTips) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE weekly_tips
		SET total_amount = $2, currency_id = $3, updated_at = $4, deleted_at = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, w.ID, w.TotalAmount, w.CurrencyID, w.UpdatedAt, w.DeletedAt)
	if err != nil {
		return fmt.Errorf("update weekly tips: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tips.ErrWeeklyTipsNotFound
	}

	return nil
}
