package tips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/rosterhub/roster-backend-go/internal/domain/currency"
	"github.com/rosterhub/roster-backend-go/internal/domain/employee"
	"github.com/rosterhub/roster-backend-go/internal/domain/shift"
	"github.com/rosterhub/roster-backend-go/internal/domain/tips"
	"github.com/rosterhub/roster-backend-go/internal/pkg/database"
	"github.com/rosterhub/roster-backend-go/internal/pkg/week"
	"github.com/shopspring/decimal"
)

type TipsServiceImpl struct {
	txm          database.TxManager
	tipsRepo     tips.WeeklyTipsRepository
	currencyRepo currency.CurrencyRepository
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewTipsService(
	txm database.TxManager,
	tipsRepo tips.WeeklyTipsRepository,
	currencyRepo currency.CurrencyRepository,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) tips.TipsService {
	return &TipsServiceImpl{
		txm:          txm,
		tipsRepo:     tipsRepo,
		currencyRepo: currencyRepo,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// GetWeeklyDistribution implements tips.TipsService.
//
// The set of employees sharing the pool is driven by who worked shifts that
// week, not by the active roster: an id present in shifts but missing from the
// roster still receives a share (named "N/A"), and an active employee with no
// shifts receives no entry at all.
func (s *TipsServiceImpl) GetWeeklyDistribution(ctx context.Context, weekNumber, year int) (tips.TipDistributionResponse, error) {
	weekStart, err := week.StartDate(weekNumber, year)
	if err != nil {
		return tips.TipDistributionResponse{}, err
	}

	weeklyTips, err := s.tipsRepo.GetByWeek(ctx, weekNumber, year)
	if err != nil {
		return tips.TipDistributionResponse{}, err
	}

	cur, err := s.currencyRepo.GetByID(ctx, weeklyTips.CurrencyID)
	if err != nil {
		if errors.Is(err, currency.ErrCurrencyNotFound) {
			// Referential inconsistency: the pool points at a currency that
			// no longer resolves.
			s.logger.Error("weekly tips reference a missing currency",
				slog.String("weekly_tips_id", weeklyTips.ID),
				slog.String("currency_id", weeklyTips.CurrencyID),
			)
			return tips.TipDistributionResponse{}, tips.ErrCurrencyMissing
		}
		return tips.TipDistributionResponse{}, err
	}

	shifts, err := s.shiftRepo.GetByDateRange(ctx, weekStart, week.EndDate(weekStart))
	if err != nil {
		return tips.TipDistributionResponse{}, err
	}

	roster, err := s.employeeRepo.GetAllActive(ctx)
	if err != nil {
		return tips.TipDistributionResponse{}, err
	}

	names := make(map[string]string, len(roster))
	for _, e := range roster {
		names[e.ID] = e.FullName()
	}

	hoursByEmployee := make(map[string]float64)
	totalHours := 0.0
	for _, sh := range shifts {
		hoursByEmployee[sh.EmployeeID] += sh.HoursWorked()
		totalHours += sh.HoursWorked()
	}

	ids := make([]string, 0, len(hoursByEmployee))
	for id := range hoursByEmployee {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	shares := make([]tips.EmployeeTipShare, 0, len(ids))
	for _, id := range ids {
		hours := hoursByEmployee[id]

		shareFactor := 0.0
		if totalHours > 0 {
			shareFactor = hours / totalHours
		}

		name, ok := names[id]
		if !ok {
			name = "N/A"
		}

		shares = append(shares, tips.EmployeeTipShare{
			EmployeeID:   id,
			EmployeeName: name,
			HoursWorked:  hours,
			// Each share is rounded independently (half away from zero);
			// the rounded amounts need not sum to the pool total.
			ShareAmount:     decimal.NewFromFloat(shareFactor).Mul(weeklyTips.TotalAmount).Round(2),
			SharePercentage: math.Round(shareFactor*100*100) / 100,
		})
	}

	return tips.TipDistributionResponse{
		WeekNumber:     weekNumber,
		Year:           year,
		WeekStartDate:  weeklyTips.WeekStartDate.Format("2006-01-02"),
		TotalTips:      weeklyTips.TotalAmount,
		CurrencyCode:   cur.Code,
		CurrencySymbol: cur.Symbol,
		TotalHours:     totalHours,
		EmployeeShares: shares,
	}, nil
}

// GetWeeklyTips implements tips.TipsService.
func (s *TipsServiceImpl) GetWeeklyTips(ctx context.Context, weekNumber, year int) (tips.WeeklyTipsResponse, error) {
	if err := week.Validate(weekNumber, year); err != nil {
		return tips.WeeklyTipsResponse{}, err
	}

	weeklyTips, err := s.tipsRepo.GetByWeek(ctx, weekNumber, year)
	if err != nil {
		return tips.WeeklyTipsResponse{}, err
	}

	code, symbol := "EUR", "€"
	if cur, err := s.currencyRepo.GetByID(ctx, weeklyTips.CurrencyID); err == nil {
		code, symbol = cur.Code, cur.Symbol
	}

	return toWeeklyTipsResponse(weeklyTips, code, symbol), nil
}

// RecordTips implements tips.TipsService. The read-then-write pair runs in a
// transaction so two writers cannot both observe an absent pool and race past
// the uniqueness constraint unreported.
func (s *TipsServiceImpl) RecordTips(ctx context.Context, req tips.RecordTipsRequest) (tips.WeeklyTipsResponse, error) {
	weekStart, err := week.StartDate(req.WeekNumber, req.Year)
	if err != nil {
		return tips.WeeklyTipsResponse{}, err
	}

	cur, err := s.currencyRepo.GetByCode(ctx, req.CurrencyCode)
	if err != nil {
		return tips.WeeklyTipsResponse{}, err
	}

	var result tips.WeeklyTips
	err = s.txm.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.tipsRepo.GetByWeek(txCtx, req.WeekNumber, req.Year)
		switch {
		case err == nil:
			if err := existing.AddAmount(req.Amount); err != nil {
				return err
			}
			if err := s.tipsRepo.Update(txCtx, existing); err != nil {
				return err
			}
			result = existing
			return nil
		case errors.Is(err, tips.ErrWeeklyTipsNotFound):
			created, err := tips.New(req.WeekNumber, req.Year, weekStart, cur.ID, req.Amount)
			if err != nil {
				return err
			}
			result, err = s.tipsRepo.Create(txCtx, created)
			return err
		default:
			return err
		}
	})
	if err != nil {
		return tips.WeeklyTipsResponse{}, fmt.Errorf("record tips: %w", err)
	}

	code, symbol := cur.Code, cur.Symbol
	if result.CurrencyID != cur.ID {
		// Pool already existed with a different currency.
		if existing, err := s.currencyRepo.GetByID(ctx, result.CurrencyID); err == nil {
			code, symbol = existing.Code, existing.Symbol
		}
	}

	return toWeeklyTipsResponse(result, code, symbol), nil
}

// UpdateTips implements tips.TipsService.
func (s *TipsServiceImpl) UpdateTips(ctx context.Context, id string, req tips.UpdateTipsRequest) (tips.WeeklyTipsResponse, error) {
	weeklyTips, err := s.tipsRepo.GetByID(ctx, id)
	if err != nil {
		return tips.WeeklyTipsResponse{}, err
	}

	currencyID := weeklyTips.CurrencyID
	if req.CurrencyID != nil {
		currencyID = *req.CurrencyID
	}

	cur, err := s.currencyRepo.GetByID(ctx, currencyID)
	if err != nil {
		return tips.WeeklyTipsResponse{}, err
	}

	if err := weeklyTips.UpdateAmount(req.TotalAmount, cur.ID); err != nil {
		return tips.WeeklyTipsResponse{}, err
	}
	if err := s.tipsRepo.Update(ctx, weeklyTips); err != nil {
		return tips.WeeklyTipsResponse{}, err
	}

	return toWeeklyTipsResponse(weeklyTips, cur.Code, cur.Symbol), nil
}

// ListCurrencies implements tips.TipsService.
func (s *TipsServiceImpl) ListCurrencies(ctx context.Context) ([]currency.CurrencyResponse, error) {
	currencies, err := s.currencyRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]currency.CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		responses = append(responses, currency.ToResponse(c))
	}
	return responses, nil
}

func toWeeklyTipsResponse(w tips.WeeklyTips, code, symbol string) tips.WeeklyTipsResponse {
	return tips.WeeklyTipsResponse{
		ID:             w.ID,
		WeekNumber:     w.WeekNumber,
		Year:           w.Year,
		WeekStartDate:  w.WeekStartDate.Format("2006-01-02"),
		TotalAmount:    w.TotalAmount,
		CurrencyCode:   code,
		CurrencySymbol: symbol,
	}
}
