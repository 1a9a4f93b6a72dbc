package finance

import (
	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

// ========================================
// TRANSACTION DTOs
// ========================================

type CreateTransactionRequest struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(TypeIncome), string(TypeExpense)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be INCOME or EXPENSE",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ExpenseTotalsResponse carries the rolled-up expense figures for reports.
// The financial year runs April 1 to March 31.
type ExpenseTotalsResponse struct {
	TodayExpense       decimal.Decimal `json:"today_expense"`
	MonthExpense       decimal.Decimal `json:"month_expense"`
	FinancialYearStart string          `json:"fy_start"`
	FYExpense          decimal.Decimal `json:"fy_expense"`
}
