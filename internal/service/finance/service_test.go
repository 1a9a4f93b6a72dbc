package finance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/finance"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

type memoryTransactionRepo struct {
	transactions []finance.Transaction
}

func (m *memoryTransactionRepo) Create(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	t.ID = "tx-1"
	m.transactions = append(m.transactions, t)
	return t, nil
}

func (m *memoryTransactionRepo) List(ctx context.Context, start, end *time.Time) ([]finance.Transaction, error) {
	out := []finance.Transaction{}
	for _, t := range m.transactions {
		if start != nil && t.Date.Before(*start) {
			continue
		}
		if end != nil && t.Date.After(*end) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func expenseOn(date, amount string) finance.Transaction {
	return finance.Transaction{Date: day(date), Type: finance.TypeExpense, Amount: dec(amount)}
}

func TestCreateValidatesRequest(t *testing.T) {
	svc := NewFinanceService(&memoryTransactionRepo{})

	_, err := svc.Create(context.Background(), finance.CreateTransactionRequest{
		Date:   "15/03/2026",
		Type:   "TRANSFER",
		Amount: dec("-5"),
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "amount")
}

func TestCreateStoresTransaction(t *testing.T) {
	repo := &memoryTransactionRepo{}
	svc := NewFinanceService(repo)

	resp, err := svc.Create(context.Background(), finance.CreateTransactionRequest{
		Date:     "2026-03-15",
		Type:     "EXPENSE",
		Category: "Raw Material",
		Amount:   dec("1250.75"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, "EXPENSE", resp.Type)
	require.Len(t, repo.transactions, 1)
	assert.True(t, repo.transactions[0].Amount.Equal(dec("1250.75")))
}

func TestExpenseTotals(t *testing.T) {
	repo := &memoryTransactionRepo{transactions: []finance.Transaction{
		expenseOn("2026-06-10", "100"), // today
		expenseOn("2026-06-10", "50"),  // today
		expenseOn("2026-06-01", "200"), // month to date
		expenseOn("2026-04-15", "400"), // financial year to date
		expenseOn("2026-03-20", "999"), // previous financial year
		{Date: day("2026-06-10"), Type: finance.TypeIncome, Amount: dec("5000")},
	}}
	svc := NewFinanceService(repo)

	totals, err := svc.ExpenseTotals(context.Background(), day("2026-06-10"))
	require.NoError(t, err)
	assert.True(t, totals.TodayExpense.Equal(dec("150")), "today = %s", totals.TodayExpense)
	assert.True(t, totals.MonthExpense.Equal(dec("350")), "month = %s", totals.MonthExpense)
	assert.Equal(t, "2026-04-01", totals.FinancialYearStart)
	assert.True(t, totals.FYExpense.Equal(dec("750")), "fy = %s", totals.FYExpense)
}

func TestExpenseTotalsBeforeAprilUsesPriorYearStart(t *testing.T) {
	repo := &memoryTransactionRepo{transactions: []finance.Transaction{
		expenseOn("2025-04-01", "100"),
		expenseOn("2026-01-10", "200"),
		expenseOn("2026-02-15", "300"), // today
	}}
	svc := NewFinanceService(repo)

	totals, err := svc.ExpenseTotals(context.Background(), day("2026-02-15"))
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", totals.FinancialYearStart)
	assert.True(t, totals.FYExpense.Equal(dec("600")))
	assert.True(t, totals.MonthExpense.Equal(dec("300")))
	assert.True(t, totals.TodayExpense.Equal(dec("300")))
}
