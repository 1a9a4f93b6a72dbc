package worker

import "context"

type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	Get(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context, activeOnly bool) ([]WorkerResponse, error)
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	Deactivate(ctx context.Context, id string) error
}
