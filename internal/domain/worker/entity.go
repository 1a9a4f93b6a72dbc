package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is never hard-deleted; deactivation flips IsActive off so
// historical attendance and payments keep a valid reference.
type Worker struct {
	ID        string
	Name      string
	Role      string
	DailyRate *decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
