package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType enum
type PaymentType string

const (
	TypePayment PaymentType = "PAYMENT"
	TypeAdvance PaymentType = "ADVANCE"
)

// WorkerPayment is an append-only ledger entry against a worker.
type WorkerPayment struct {
	ID        string
	WorkerID  string
	Date      time.Time
	Amount    decimal.Decimal
	Type      PaymentType
	Notes     string
	CreatedAt time.Time

	// Joined field from workers
	WorkerName *string
}
