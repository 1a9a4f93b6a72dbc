package worker

import "context"

// WorkerRepository defines data access methods for workers.
// List results are ordered by name ascending.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context, activeOnly bool) ([]Worker, error)
	Update(ctx context.Context, req UpdateWorkerRequest) error
	Deactivate(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}
