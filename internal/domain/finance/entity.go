package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enum
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Transaction is an immutable ledger entry; there is no update path.
type Transaction struct {
	ID          string
	Date        time.Time
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
