package dashboard

import "github.com/shopspring/decimal"

// SummaryResponse carries the dashboard KPIs for a given day: headcount,
// today's attendance split and month-to-date financials.
type SummaryResponse struct {
	TotalWorkers      int64           `json:"total_workers"`
	PresentToday      int             `json:"present_today"`
	AbsentToday       int             `json:"absent_today"`
	TotalIncomeMonth  decimal.Decimal `json:"total_income_month"`
	TotalExpenseMonth decimal.Decimal `json:"total_expense_month"`
	ProfitMonth       decimal.Decimal `json:"profit_month"`
}

// NotificationsResponse is the ordered list of threshold-breach messages
// (at most one per check, empty when nothing breached).
type NotificationsResponse struct {
	Messages []string `json:"messages"`
}
