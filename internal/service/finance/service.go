package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/finance"
)

type FinanceServiceImpl struct {
	transactionRepo finance.TransactionRepository
}

func NewFinanceService(transactionRepo finance.TransactionRepository) finance.FinanceService {
	return &FinanceServiceImpl{transactionRepo: transactionRepo}
}

func (s *FinanceServiceImpl) Create(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.TransactionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.transactionRepo.Create(ctx, finance.Transaction{
		Date:        date,
		Type:        finance.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return finance.TransactionResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *FinanceServiceImpl) List(ctx context.Context, start, end *time.Time) ([]finance.TransactionResponse, error) {
	transactions, err := s.transactionRepo.List(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]finance.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, mapToResponse(t))
	}

	return result, nil
}

// ExpenseTotals reports expense sums for today, the calendar month to date
// and the financial year to date. The financial year starts April 1: days
// before April belong to the year that started the previous April.
func (s *FinanceServiceImpl) ExpenseTotals(ctx context.Context, today time.Time) (finance.ExpenseTotalsResponse, error) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	todayExpense, err := s.expenseSum(ctx, today, today)
	if err != nil {
		return finance.ExpenseTotalsResponse{}, err
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthExpense, err := s.expenseSum(ctx, monthStart, today)
	if err != nil {
		return finance.ExpenseTotalsResponse{}, err
	}

	fyYear := today.Year()
	if today.Month() < time.April {
		fyYear--
	}
	fyStart := time.Date(fyYear, time.April, 1, 0, 0, 0, 0, today.Location())
	fyExpense, err := s.expenseSum(ctx, fyStart, today)
	if err != nil {
		return finance.ExpenseTotalsResponse{}, err
	}

	return finance.ExpenseTotalsResponse{
		TodayExpense:       todayExpense.Round(2),
		MonthExpense:       monthExpense.Round(2),
		FinancialYearStart: fyStart.Format("2006-01-02"),
		FYExpense:          fyExpense.Round(2),
	}, nil
}

func (s *FinanceServiceImpl) expenseSum(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.List(ctx, &start, &end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load transactions: %w", err)
	}

	sum := decimal.Zero
	for _, t := range transactions {
		if t.Type == finance.TypeExpense {
			sum = sum.Add(t.Amount)
		}
	}

	return sum, nil
}

func mapToResponse(t finance.Transaction) finance.TransactionResponse {
	return finance.TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format("2006-01-02"),
		Type:        string(t.Type),
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
	}
}
