package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub/roster-backend-go/internal/domain/currency"
	"github.com/rosterhub/roster-backend-go/internal/domain/employee"
	"github.com/rosterhub/roster-backend-go/internal/domain/shift"
	"github.com/rosterhub/roster-backend-go/internal/domain/tips"
	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
)

// fakeTipsService returns canned values; each field defaults to the domain's
// not-found error when unset.
type fakeTipsService struct {
	distribution *tips.TipDistributionResponse
	weekly       *tips.WeeklyTipsResponse
	recordErr    error
	currencies   []currency.CurrencyResponse
}

func (s *fakeTipsService) GetWeeklyDistribution(_ context.Context, weekNumber, year int) (tips.TipDistributionResponse, error) {
	if s.distribution == nil {
		return tips.TipDistributionResponse{}, tips.ErrWeeklyTipsNotFound
	}
	return *s.distribution, nil
}

func (s *fakeTipsService) GetWeeklyTips(_ context.Context, weekNumber, year int) (tips.WeeklyTipsResponse, error) {
	if s.weekly == nil {
		return tips.WeeklyTipsResponse{}, tips.ErrWeeklyTipsNotFound
	}
	return *s.weekly, nil
}

func (s *fakeTipsService) RecordTips(_ context.Context, req tips.RecordTipsRequest) (tips.WeeklyTipsResponse, error) {
	if s.recordErr != nil {
		return tips.WeeklyTipsResponse{}, s.recordErr
	}
	return tips.WeeklyTipsResponse{
		WeekNumber:   req.WeekNumber,
		Year:         req.Year,
		TotalAmount:  req.Amount,
		CurrencyCode: req.CurrencyCode,
	}, nil
}

func (s *fakeTipsService) UpdateTips(_ context.Context, id string, req tips.UpdateTipsRequest) (tips.WeeklyTipsResponse, error) {
	if s.weekly == nil {
		return tips.WeeklyTipsResponse{}, tips.ErrWeeklyTipsNotFound
	}
	updated := *s.weekly
	updated.TotalAmount = req.TotalAmount
	return updated, nil
}

func (s *fakeTipsService) ListCurrencies(_ context.Context) ([]currency.CurrencyResponse, error) {
	return s.currencies, nil
}

type fakeShiftService struct {
	roster *shift.WeeklyRosterResponse
}

func (s *fakeShiftService) Create(_ context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if req.Date == "" {
		return shift.ShiftResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return shift.ShiftResponse{ID: "shift-1", EmployeeID: req.EmployeeID, Date: req.Date}, nil
}

func (s *fakeShiftService) Update(_ context.Context, id string, _ shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	return shift.ShiftResponse{}, shift.ErrShiftNotFound
}

func (s *fakeShiftService) Delete(_ context.Context, id string) error {
	return shift.ErrShiftNotFound
}

func (s *fakeShiftService) GetByID(_ context.Context, id string) (shift.ShiftResponse, error) {
	return shift.ShiftResponse{}, shift.ErrShiftNotFound
}

func (s *fakeShiftService) GetByWeek(_ context.Context, weekNumber, year int) ([]shift.ShiftResponse, error) {
	return nil, nil
}

func (s *fakeShiftService) GetWeeklyRoster(_ context.Context, weekNumber, year int) (shift.WeeklyRosterResponse, error) {
	if s.roster == nil {
		return shift.WeeklyRosterResponse{WeekNumber: weekNumber, Year: year}, nil
	}
	return *s.roster, nil
}

func (s *fakeShiftService) GetEmployeeWeek(_ context.Context, employeeID string, weekNumber, year int) (shift.EmployeeWeekResponse, error) {
	return shift.EmployeeWeekResponse{}, employee.ErrEmployeeNotFound
}

type fakeEmployeeService struct {
	employees map[string]employee.EmployeeResponse
}

func (s *fakeEmployeeService) Create(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.Email == "taken@example.com" {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}
	if req.FirstName == "" {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "first_name", Message: "first name cannot be empty"}}
	}
	return employee.EmployeeResponse{ID: "emp-1", FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}, nil
}

func (s *fakeEmployeeService) Update(_ context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

func (s *fakeEmployeeService) Delete(_ context.Context, id string) error {
	return employee.ErrEmployeeNotFound
}

func (s *fakeEmployeeService) GetByID(_ context.Context, id string) (employee.EmployeeResponse, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *fakeEmployeeService) List(_ context.Context) ([]employee.EmployeeResponse, error) {
	var result []employee.EmployeeResponse
	for _, e := range s.employees {
		result = append(result, e)
	}
	return result, nil
}

func newTestRouter(tipsSvc *fakeTipsService, shiftSvc *fakeShiftService, empSvc *fakeEmployeeService) http.Handler {
	if tipsSvc == nil {
		tipsSvc = &fakeTipsService{}
	}
	if shiftSvc == nil {
		shiftSvc = &fakeShiftService{}
	}
	if empSvc == nil {
		empSvc = &fakeEmployeeService{employees: map[string]employee.EmployeeResponse{}}
	}
	return NewRouter(
		NewTipsHandler(tipsSvc),
		NewRosterHandler(shiftSvc),
		NewShiftHandler(shiftSvc),
		NewEmployeeHandler(empSvc, shiftSvc),
	)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetDistribution(t *testing.T) {
	tipsSvc := &fakeTipsService{
		distribution: &tips.TipDistributionResponse{
			WeekNumber:     2,
			Year:           2025,
			WeekStartDate:  "2025-01-06",
			TotalTips:      decimal.NewFromInt(300),
			CurrencyCode:   "EUR",
			CurrencySymbol: "€",
			TotalHours:     30,
			EmployeeShares: []tips.EmployeeTipShare{
				{EmployeeID: "a", EmployeeName: "Alice Murphy", HoursWorked: 20, ShareAmount: decimal.NewFromInt(200), SharePercentage: 66.67},
			},
		},
	}
	router := newTestRouter(tipsSvc, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/tips/distribution/week/2025/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "2025-01-06", data["week_start_date"])
	assert.Equal(t, "EUR", data["currency_code"])
}

func TestGetDistribution_NoPool(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/tips/distribution/week/2025/2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestGetDistribution_NonNumericWeek(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/tips/distribution/week/2025/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordTips_IntegrityFaultIsServerError(t *testing.T) {
	tipsSvc := &fakeTipsService{recordErr: tips.ErrCurrencyMissing}
	router := newTestRouter(tipsSvc, nil, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/tips", tips.RecordTipsRequest{
		WeekNumber: 2, Year: 2025, Amount: decimal.NewFromInt(10), CurrencyCode: "EUR",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecordTips_Created(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/tips", tips.RecordTipsRequest{
		WeekNumber: 2, Year: 2025, Amount: decimal.NewFromFloat(150.25), CurrencyCode: "EUR",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "EUR", data["currency_code"])
}

func TestGetRoster(t *testing.T) {
	router := newTestRouter(nil, &fakeShiftService{
		roster: &shift.WeeklyRosterResponse{
			WeekNumber:    2,
			Year:          2025,
			WeekStartDate: "2025-01-06",
			WeekEndDate:   "2025-01-12",
		},
	}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/roster/week/2025/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "2025-01-12", data["week_end_date"])
}

func TestCreateEmployee_Conflict(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees", employee.CreateEmployeeRequest{
		FirstName: "Alice", LastName: "Murphy", Email: "taken@example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateEmployee_ValidationDetails(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees", employee.CreateEmployeeRequest{
		LastName: "Murphy", Email: "alice.murphy@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errDetail := decodeBody(t, rec)["error"].(map[string]interface{})
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "first_name")
}

func TestGetEmployee_NotFound(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees/0195b2da-7a3e-7cc0-8b3d-111111111111", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetEmployee_MalformedID(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees/unknown", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errDetail := decodeBody(t, rec)["error"].(map[string]interface{})
	assert.Equal(t, "BAD_REQUEST", errDetail["code"])
}

func TestDeleteShift_MalformedID(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/shifts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateShift_MalformedBody(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCurrencies(t *testing.T) {
	tipsSvc := &fakeTipsService{currencies: []currency.CurrencyResponse{{Code: "EUR", Symbol: "€", Name: "Euro"}}}
	router := newTestRouter(tipsSvc, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/currencies", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "EUR", data[0].(map[string]interface{})["code"])
}
