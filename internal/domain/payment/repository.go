package payment

import (
	"context"
	"time"
)

// WorkerPaymentRepository defines data access methods for the worker
// payment ledger. Results are ordered by date ascending, then insertion
// order; List with a nil workerID returns all workers' entries.
type WorkerPaymentRepository interface {
	Create(ctx context.Context, p WorkerPayment) (WorkerPayment, error)
	List(ctx context.Context, workerID *string) ([]WorkerPayment, error)
	ListRange(ctx context.Context, start, end time.Time) ([]WorkerPayment, error)
}
