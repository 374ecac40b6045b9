package shift

import "github.com/rosterhub/roster-backend-go/internal/domain/employee"

type CreateShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`       // YYYY-MM-DD
	StartTime  string  `json:"start_time"` // HH:MM
	EndTime    string  `json:"end_time"`   // HH:MM
	Notes      *string `json:"notes,omitempty"`
}

type UpdateShiftRequest struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Notes     *string `json:"notes,omitempty"`
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	HoursWorked  float64 `json:"hours_worked"`
	Notes        *string `json:"notes,omitempty"`
}

func ToResponse(s Shift, employeeName string) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: employeeName,
		Date:         s.Date.Format("2006-01-02"),
		StartTime:    s.StartTime.Format("15:04"),
		EndTime:      s.EndTime.Format("15:04"),
		HoursWorked:  s.HoursWorked(),
		Notes:        s.Notes,
	}
}

// EmployeeWeekSummary is one roster row: an employee's hours and shifts for a
// single week.
type EmployeeWeekSummary struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalHours   float64         `json:"total_hours"`
	Shifts       []ShiftResponse `json:"shifts"`
}

type WeeklyRosterResponse struct {
	WeekNumber    int                   `json:"week_number"`
	Year          int                   `json:"year"`
	WeekStartDate string                `json:"week_start_date"`
	WeekEndDate   string                `json:"week_end_date"`
	Employees     []EmployeeWeekSummary `json:"employees"`
}

// EmployeeWeekResponse is the weekly detail view of a single employee.
type EmployeeWeekResponse struct {
	Employee   employee.EmployeeResponse `json:"employee"`
	WeekNumber int                       `json:"week_number"`
	Year       int                       `json:"year"`
	TotalHours float64                   `json:"total_hours"`
	Shifts     []ShiftResponse           `json:"shifts"`
}
