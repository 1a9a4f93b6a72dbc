package finance

import (
	"context"
	"time"
)

type FinanceService interface {
	Create(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	List(ctx context.Context, start, end *time.Time) ([]TransactionResponse, error)
	// ExpenseTotals reports today's, month-to-date and
	// financial-year-to-date expense sums relative to the given day.
	ExpenseTotals(ctx context.Context, today time.Time) (ExpenseTotalsResponse, error)
}
