package payment

import (
	"context"
	"time"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/payment"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
)

type PaymentServiceImpl struct {
	paymentRepo payment.WorkerPaymentRepository
	workerRepo  worker.WorkerRepository
}

func NewPaymentService(
	paymentRepo payment.WorkerPaymentRepository,
	workerRepo worker.WorkerRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		workerRepo:  workerRepo,
	}
}

func (s *PaymentServiceImpl) Create(ctx context.Context, req payment.CreateWorkerPaymentRequest) (payment.WorkerPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.WorkerPaymentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return payment.WorkerPaymentResponse{}, err
	}

	created, err := s.paymentRepo.Create(ctx, payment.WorkerPayment{
		WorkerID: req.WorkerID,
		Date:     date,
		Amount:   req.Amount,
		Type:     payment.PaymentType(req.Type),
		Notes:    req.Notes,
	})
	if err != nil {
		return payment.WorkerPaymentResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *PaymentServiceImpl) List(ctx context.Context, workerID *string) ([]payment.WorkerPaymentResponse, error) {
	payments, err := s.paymentRepo.List(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return mapToResponses(payments), nil
}

func (s *PaymentServiceImpl) ListRange(ctx context.Context, start, end time.Time) ([]payment.WorkerPaymentResponse, error) {
	payments, err := s.paymentRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return mapToResponses(payments), nil
}

func mapToResponse(p payment.WorkerPayment) payment.WorkerPaymentResponse {
	resp := payment.WorkerPaymentResponse{
		ID:       p.ID,
		WorkerID: p.WorkerID,
		Date:     p.Date.Format("2006-01-02"),
		Amount:   p.Amount,
		Type:     string(p.Type),
		Notes:    p.Notes,
	}
	if p.WorkerName != nil {
		resp.WorkerName = *p.WorkerName
	}
	return resp
}

func mapToResponses(payments []payment.WorkerPayment) []payment.WorkerPaymentResponse {
	result := make([]payment.WorkerPaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapToResponse(p))
	}
	return result
}
