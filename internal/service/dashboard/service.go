package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/attendance"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/dashboard"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/finance"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/setting"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
)

const trailingWindowDays = 30

var (
	expenseDefaultFactor  = decimal.New(15, -1) // 1.5
	fundFlowDefaultFactor = decimal.NewFromInt(2)
)

type DashboardServiceImpl struct {
	workerRepo      worker.WorkerRepository
	attendanceRepo  attendance.AttendanceRepository
	transactionRepo finance.TransactionRepository
	settingService  setting.SettingService
}

func NewDashboardService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	transactionRepo finance.TransactionRepository,
	settingService setting.SettingService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		workerRepo:      workerRepo,
		attendanceRepo:  attendanceRepo,
		transactionRepo: transactionRepo,
		settingService:  settingService,
	}
}

// GetSummary computes the dashboard KPIs for the given day: active
// headcount, today's Present/Absent counts and month-to-date financials.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, today time.Time) (dashboard.SummaryResponse, error) {
	today = dateOf(today)

	totalWorkers, err := s.workerRepo.CountActive(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count workers: %w", err)
	}

	attToday, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	presentToday := 0
	absentToday := 0
	for _, rec := range attToday {
		switch rec.Status {
		case attendance.StatusPresent:
			presentToday++
		case attendance.StatusAbsent:
			absentToday++
		}
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	transactions, err := s.transactionRepo.List(ctx, &monthStart, &today)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to load month transactions: %w", err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case finance.TypeIncome:
			income = income.Add(t.Amount)
		case finance.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return dashboard.SummaryResponse{
		TotalWorkers:      totalWorkers,
		PresentToday:      presentToday,
		AbsentToday:       absentToday,
		TotalIncomeMonth:  income,
		TotalExpenseMonth: expense,
		ProfitMonth:       income.Sub(expense),
	}, nil
}

// CheckNotifications runs the two threshold checks over the trailing
// 30-day transaction window and returns 0-2 alert messages.
//
// Threshold resolution, per check: a stored numeric setting wins; a stored
// zero disables the check; unset (or non-numeric) falls back to a multiple
// of the average daily expense over prior expense-bearing days. An empty
// window means no average exists and both checks are skipped.
func (s *DashboardServiceImpl) CheckNotifications(ctx context.Context, today time.Time) ([]string, error) {
	today = dateOf(today)
	msgs := []string{}

	windowStart := today.AddDate(0, 0, -trailingWindowDays)
	transactions, err := s.transactionRepo.List(ctx, &windowStart, &today)
	if err != nil {
		return nil, fmt.Errorf("failed to load trailing transactions: %w", err)
	}
	if len(transactions) == 0 {
		return msgs, nil
	}

	todayExpense := decimal.Zero
	todayIncome := decimal.Zero
	dailyExpenses := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if sameDay(t.Date, today) {
			switch t.Type {
			case finance.TypeExpense:
				todayExpense = todayExpense.Add(t.Amount)
			case finance.TypeIncome:
				todayIncome = todayIncome.Add(t.Amount)
			}
			continue
		}
		if t.Type == finance.TypeExpense {
			day := t.Date.Format("2006-01-02")
			dailyExpenses[day] = dailyExpenses[day].Add(t.Amount)
		}
	}

	avgDailyExpense := decimal.Zero
	if len(dailyExpenses) > 0 {
		sum := decimal.Zero
		for _, v := range dailyExpenses {
			sum = sum.Add(v)
		}
		avgDailyExpense = sum.Div(decimal.NewFromInt(int64(len(dailyExpenses))))
	}

	expenseThreshold, err := s.resolveThreshold(ctx, setting.KeyExpenseThreshold, avgDailyExpense, expenseDefaultFactor)
	if err != nil {
		return nil, err
	}
	if !expenseThreshold.IsZero() && todayExpense.GreaterThan(expenseThreshold) {
		msgs = append(msgs, fmt.Sprintf(
			"High daily expense alert: Today's expenses (%s) are above the threshold (%s).",
			todayExpense.StringFixed(2), expenseThreshold.StringFixed(2),
		))
	}

	totalFlowToday := todayExpense.Add(todayIncome)
	flowThreshold, err := s.resolveThreshold(ctx, setting.KeyFundFlowThreshold, avgDailyExpense, fundFlowDefaultFactor)
	if err != nil {
		return nil, err
	}
	if !flowThreshold.IsZero() && totalFlowToday.GreaterThan(flowThreshold) {
		msgs = append(msgs, fmt.Sprintf(
			"Heavy fund flow alert: Today's total flow (%s) is above the threshold (%s).",
			totalFlowToday.StringFixed(2), flowThreshold.StringFixed(2),
		))
	}

	return msgs, nil
}

func (s *DashboardServiceImpl) resolveThreshold(ctx context.Context, key string, avg, factor decimal.Decimal) (decimal.Decimal, error) {
	threshold := decimal.Zero
	if avg.IsPositive() {
		threshold = avg.Mul(factor)
	}

	stored, ok, err := s.settingService.GetNumber(ctx, key)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve %s: %w", key, err)
	}
	if ok {
		threshold = stored
	}

	return threshold, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
