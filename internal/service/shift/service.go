package shift

import (
	"context"
	"time"

	"github.com/rosterhub/roster-backend-go/internal/domain/employee"
	"github.com/rosterhub/roster-backend-go/internal/domain/shift"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
	"github.com/rosterhub/roster-backend-go/internal/pkg/week"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	date, start, end, err := parseSchedule(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if emp.IsDeleted() {
		// Historical shifts may reference deleted employees; new ones may not.
		return shift.ShiftResponse{}, employee.ErrEmployeeNotFound
	}

	sh, err := shift.New(req.EmployeeID, date, start, end, req.Notes)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, sh)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(created, emp.FullName()), nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	date, start, end, err := parseSchedule(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := sh.Update(date, start, end, req.Notes); err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(sh, s.employeeName(ctx, sh.EmployeeID)), nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	sh.Meta.Delete()
	return s.shiftRepo.Update(ctx, sh)
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(sh, s.employeeName(ctx, sh.EmployeeID)), nil
}

// GetByWeek implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByWeek(ctx context.Context, weekNumber, year int) ([]shift.ShiftResponse, error) {
	shifts, _, err := s.shiftsForWeek(ctx, weekNumber, year)
	if err != nil {
		return nil, err
	}

	roster, err := s.employeeRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(roster))
	for _, e := range roster {
		names[e.ID] = e.FullName()
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		name, ok := names[sh.EmployeeID]
		if !ok {
			name = "N/A"
		}
		responses = append(responses, shift.ToResponse(sh, name))
	}
	return responses, nil
}

// GetWeeklyRoster implements shift.ShiftService. Unlike the tip distribution,
// the roster covers every active employee, including those without shifts.
func (s *ShiftServiceImpl) GetWeeklyRoster(ctx context.Context, weekNumber, year int) (shift.WeeklyRosterResponse, error) {
	shifts, weekStart, err := s.shiftsForWeek(ctx, weekNumber, year)
	if err != nil {
		return shift.WeeklyRosterResponse{}, err
	}

	roster, err := s.employeeRepo.GetAllActive(ctx)
	if err != nil {
		return shift.WeeklyRosterResponse{}, err
	}

	byEmployee := make(map[string][]shift.Shift)
	for _, sh := range shifts {
		byEmployee[sh.EmployeeID] = append(byEmployee[sh.EmployeeID], sh)
	}

	summaries := make([]shift.EmployeeWeekSummary, 0, len(roster))
	for _, emp := range roster {
		empShifts := byEmployee[emp.ID]

		totalHours := 0.0
		shiftResponses := make([]shift.ShiftResponse, 0, len(empShifts))
		for _, sh := range empShifts {
			totalHours += sh.HoursWorked()
			shiftResponses = append(shiftResponses, shift.ToResponse(sh, emp.FullName()))
		}

		summaries = append(summaries, shift.EmployeeWeekSummary{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			TotalHours:   totalHours,
			Shifts:       shiftResponses,
		})
	}

	return shift.WeeklyRosterResponse{
		WeekNumber:    weekNumber,
		Year:          year,
		WeekStartDate: weekStart.Format("2006-01-02"),
		WeekEndDate:   week.EndDate(weekStart).Format("2006-01-02"),
		Employees:     summaries,
	}, nil
}

// GetEmployeeWeek implements shift.ShiftService.
func (s *ShiftServiceImpl) GetEmployeeWeek(ctx context.Context, employeeID string, weekNumber, year int) (shift.EmployeeWeekResponse, error) {
	weekStart, err := week.StartDate(weekNumber, year)
	if err != nil {
		return shift.EmployeeWeekResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return shift.EmployeeWeekResponse{}, err
	}
	if emp.IsDeleted() {
		return shift.EmployeeWeekResponse{}, employee.ErrEmployeeNotFound
	}

	shifts, err := s.shiftRepo.GetByEmployeeAndDateRange(ctx, employeeID, weekStart, week.EndDate(weekStart))
	if err != nil {
		return shift.EmployeeWeekResponse{}, err
	}

	totalHours := 0.0
	shiftResponses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		totalHours += sh.HoursWorked()
		shiftResponses = append(shiftResponses, shift.ToResponse(sh, emp.FullName()))
	}

	return shift.EmployeeWeekResponse{
		Employee:   employee.ToResponse(emp),
		WeekNumber: weekNumber,
		Year:       year,
		TotalHours: totalHours,
		Shifts:     shiftResponses,
	}, nil
}

// shiftsForWeek resolves the week's date range and returns its active shifts,
// ordered by date then start time.
func (s *ShiftServiceImpl) shiftsForWeek(ctx context.Context, weekNumber, year int) ([]shift.Shift, time.Time, error) {
	weekStart, err := week.StartDate(weekNumber, year)
	if err != nil {
		return nil, time.Time{}, err
	}

	shifts, err := s.shiftRepo.GetByDateRange(ctx, weekStart, week.EndDate(weekStart))
	if err != nil {
		return nil, time.Time{}, err
	}
	return shifts, weekStart, nil
}

func (s *ShiftServiceImpl) employeeName(ctx context.Context, employeeID string) string {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil || emp.IsDeleted() {
		return "N/A"
	}
	return emp.FullName()
}

// parseSchedule turns the request's date and wall-clock strings into the
// timestamps the entity carries. Start and end are anchored on the shift date,
// so an overnight shift cannot be expressed; validation rejects end <= start.
func parseSchedule(dateStr, startStr, endStr string) (date, start, end time.Time, err error) {
	var errs validator.ValidationErrors

	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	startClock, ok := validator.IsValidTimeOfDay(startStr)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be in HH:MM format"})
	}
	endClock, ok := validator.IsValidTimeOfDay(endStr)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be in HH:MM format"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, time.Time{}, errs
	}

	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start = date.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)
	end = date.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)
	return date, start, end, nil
}
