package finance

import (
	"context"
	"time"
)

// TransactionRepository defines data access methods for transactions.
// List bounds are inclusive; nil means unbounded on that side. Results are
// ordered by date ascending, then insertion order.
type TransactionRepository interface {
	Create(ctx context.Context, t Transaction) (Transaction, error)
	List(ctx context.Context, start, end *time.Time) ([]Transaction, error)
}
