package payroll

import "github.com/shopspring/decimal"

// PayrollRow is one computed payroll line for a currently-active worker
// over a date range. It is derived on every request and never persisted.
//
// NetPayable = GrossSalary - TotalAdvance - TotalPaymentDone and may be
// negative when advances or payments exceed earnings; it is surfaced
// as-is, not clamped.
type PayrollRow struct {
	WorkerID             string          `json:"worker_id"`
	WorkerName           string          `json:"worker_name"`
	DailyRate            decimal.Decimal `json:"daily_rate"`
	DaysPresent          int             `json:"days_present"`
	HalfDays             int             `json:"half_days"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	WorkedDaysEquivalent decimal.Decimal `json:"worked_days_equivalent"`
	GrossSalary          decimal.Decimal `json:"gross_salary"`
	TotalAdvance         decimal.Decimal `json:"total_advance"`
	TotalPaymentDone     decimal.Decimal `json:"total_payment_done"`
	NetPayable           decimal.Decimal `json:"net_payable"`
}
