package payment

import (
	"context"
	"time"
)

type PaymentService interface {
	Create(ctx context.Context, req CreateWorkerPaymentRequest) (WorkerPaymentResponse, error)
	List(ctx context.Context, workerID *string) ([]WorkerPaymentResponse, error)
	ListRange(ctx context.Context, start, end time.Time) ([]WorkerPaymentResponse, error)
}
