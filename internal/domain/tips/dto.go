package tips

import "github.com/shopspring/decimal"

// EmployeeTipShare is one employee's slice of the weekly pool. The share is
// proportional to hours worked; the amount is rounded independently per share,
// so the rounded amounts are not guaranteed to sum to the pool total.
type EmployeeTipShare struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	HoursWorked     float64         `json:"hours_worked"`
	ShareAmount     decimal.Decimal `json:"share_amount"`
	SharePercentage float64         `json:"share_percentage"`
}

type TipDistributionResponse struct {
	WeekNumber     int                `json:"week_number"`
	Year           int                `json:"year"`
	WeekStartDate  string             `json:"week_start_date"`
	TotalTips      decimal.Decimal    `json:"total_tips"`
	CurrencyCode   string             `json:"currency_code"`
	CurrencySymbol string             `json:"currency_symbol"`
	TotalHours     float64            `json:"total_hours"`
	EmployeeShares []EmployeeTipShare `json:"employee_shares"`
}

type WeeklyTipsResponse struct {
	ID             string          `json:"id"`
	WeekNumber     int             `json:"week_number"`
	Year           int             `json:"year"`
	WeekStartDate  string          `json:"week_start_date"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CurrencyCode   string          `json:"currency_code"`
	CurrencySymbol string          `json:"currency_symbol"`
}

// RecordTipsRequest creates the week's pool or adds to an existing one.
type RecordTipsRequest struct {
	WeekNumber   int             `json:"week_number"`
	Year         int             `json:"year"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
}

type UpdateTipsRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	CurrencyID  *string         `json:"currency_id,omitempty"`
}
