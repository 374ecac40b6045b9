package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rosterhub/roster-backend-go/internal/domain/shift"
	"github.com/rosterhub/roster-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, employee_id, date, start_time, end_time, notes, created_at, updated_at, deleted_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime, &s.Notes, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query, s.ID, s.EmployeeID, s.Date, s.StartTime, s.EndTime, s.Notes, s.CreatedAt, s.UpdatedAt, s.DeletedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1 AND deleted_at IS NULL`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("get shift by id: %w", err)
	}

	return s, nil
}

// GetByDateRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE date >= $1 AND date <= $2 AND deleted_at IS NULL
		ORDER BY date, start_time
	`

	return r.queryShifts(ctx, q, query, start, end)
}

// GetByEmployeeAndDateRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND date >= $2 AND date <= $3 AND deleted_at IS NULL
		ORDER BY date, start_time
	`

	return r.queryShifts(ctx, q, query, employeeID, start, end)
}

func (r *shiftRepositoryImpl) queryShifts(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]shift.Shift, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET date = $2, start_time = $3, end_time = $4, notes = $5, updated_at = $6, deleted_at = $7
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Date, s.StartTime, s.EndTime, s.Notes, s.UpdatedAt, s.DeletedAt)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
