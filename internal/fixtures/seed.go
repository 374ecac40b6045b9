// Package fixtures seeds a demo dataset: a small roster, eight trailing weeks
// of shifts, and a tip pool for each of those weeks. Intended for local
// development behind the SEED_DEMO_DATA flag.
package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosterhub/roster-backend-go/internal/domain/currency"
	"github.com/rosterhub/roster-backend-go/internal/domain/employee"
	"github.com/rosterhub/roster-backend-go/internal/domain/shift"
	"github.com/rosterhub/roster-backend-go/internal/domain/tips"
	"github.com/rosterhub/roster-backend-go/internal/pkg/week"
)

type Seeder struct {
	currencyRepo currency.CurrencyRepository
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	tipsRepo     tips.WeeklyTipsRepository
	logger       *slog.Logger
}

func NewSeeder(
	currencyRepo currency.CurrencyRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	tipsRepo tips.WeeklyTipsRepository,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		currencyRepo: currencyRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		tipsRepo:     tipsRepo,
		logger:       logger,
	}
}

var demoCurrencies = []struct {
	code, symbol, name string
}{
	{"EUR", "€", "Euro"},
	{"USD", "$", "US Dollar"},
	{"GBP", "£", "British Pound"},
}

var demoEmployees = []struct {
	firstName, lastName, email string
}{
	{"Alice", "Murphy", "alice.murphy@example.com"},
	{"Bob", "Ryan", "bob.ryan@example.com"},
	{"Charlie", "Nolan", "charlie.nolan@example.com"},
	{"Diana", "Kelly", "diana.kelly@example.com"},
	{"Ethan", "Walsh", "ethan.walsh@example.com"},
}

// Seed populates demo data. It is idempotent: a non-empty roster means the
// database was seeded before and the whole run is skipped.
func (s *Seeder) Seed(ctx context.Context) error {
	existing, err := s.employeeRepo.GetAllActive(ctx)
	if err != nil {
		return fmt.Errorf("seed: check roster: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("demo data already present, skipping seed")
		return nil
	}

	eur, err := s.seedCurrencies(ctx)
	if err != nil {
		return err
	}

	roster, err := s.seedEmployees(ctx)
	if err != nil {
		return err
	}

	if err := s.seedWeeks(ctx, roster, eur); err != nil {
		return err
	}

	s.logger.Info("demo data seeded",
		slog.Int("employees", len(roster)),
		slog.Int("weeks", seedWeekCount),
	)
	return nil
}

func (s *Seeder) seedCurrencies(ctx context.Context) (currency.Currency, error) {
	var eur currency.Currency
	for _, c := range demoCurrencies {
		cur, err := currency.New(c.code, c.symbol, c.name)
		if err != nil {
			return currency.Currency{}, fmt.Errorf("seed: build currency %s: %w", c.code, err)
		}
		created, err := s.currencyRepo.Create(ctx, cur)
		if err != nil {
			return currency.Currency{}, fmt.Errorf("seed: create currency %s: %w", c.code, err)
		}
		if created.Code == "EUR" {
			eur = created
		}
	}
	return eur, nil
}

func (s *Seeder) seedEmployees(ctx context.Context) ([]employee.Employee, error) {
	roster := make([]employee.Employee, 0, len(demoEmployees))
	for _, e := range demoEmployees {
		emp, err := employee.New(e.firstName, e.lastName, e.email)
		if err != nil {
			return nil, fmt.Errorf("seed: build employee %s: %w", e.email, err)
		}
		created, err := s.employeeRepo.Create(ctx, emp)
		if err != nil {
			return nil, fmt.Errorf("seed: create employee %s: %w", e.email, err)
		}
		roster = append(roster, created)
	}
	return roster, nil
}

const seedWeekCount = 8

// seedWeeks writes shifts and a tip pool for the trailing weeks, current week
// included. The schedule is deterministic so repeated fresh seeds produce the
// same data.
func (s *Seeder) seedWeeks(ctx context.Context, roster []employee.Employee, cur currency.Currency) error {
	year, weekNumber := week.Of(time.Now().UTC())

	for i := 0; i < seedWeekCount; i++ {
		weekStart, err := week.StartDate(weekNumber, year)
		if err != nil {
			return fmt.Errorf("seed: resolve week %d/%d: %w", weekNumber, year, err)
		}

		if err := s.seedShiftsForWeek(ctx, roster, weekStart, i); err != nil {
			return err
		}

		// Pool amounts walk a fixed 200-600 range.
		amount := decimal.NewFromInt(int64(200 + (i*57)%401))
		pool, err := tips.New(weekNumber, year, weekStart, cur.ID, amount)
		if err != nil {
			return fmt.Errorf("seed: build tips for week %d/%d: %w", weekNumber, year, err)
		}
		if _, err := s.tipsRepo.Create(ctx, pool); err != nil {
			return fmt.Errorf("seed: create tips for week %d/%d: %w", weekNumber, year, err)
		}

		year, weekNumber = week.Of(weekStart.AddDate(0, 0, -1))
	}
	return nil
}

// seedShiftsForWeek gives each employee four shifts, spread Monday through
// Thursday plus a staggered weekday, between six and nine hours each.
func (s *Seeder) seedShiftsForWeek(ctx context.Context, roster []employee.Employee, weekStart time.Time, weekIndex int) error {
	for empIndex, emp := range roster {
		for shiftIndex := 0; shiftIndex < 4; shiftIndex++ {
			dayOffset := (shiftIndex + empIndex) % 5
			date := weekStart.AddDate(0, 0, dayOffset)

			startHour := 9 + (empIndex+shiftIndex)%3
			hours := 6 + (empIndex+shiftIndex+weekIndex)%4
			start := date.Add(time.Duration(startHour) * time.Hour)
			end := start.Add(time.Duration(hours) * time.Hour)

			sh, err := shift.New(emp.ID, date, start, end, nil)
			if err != nil {
				return fmt.Errorf("seed: build shift for %s: %w", emp.Email, err)
			}
			if _, err := s.shiftRepo.Create(ctx, sh); err != nil {
				return fmt.Errorf("seed: create shift for %s: %w", emp.Email, err)
			}
		}
	}
	return nil
}
