package worker

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
	"github.com/techniqueiron/ironworks-backend-go/internal/repository/postgresql"
)

type WorkerServiceImpl struct {
	db         *database.DB
	workerRepo worker.WorkerRepository
}

func NewWorkerService(db *database.DB, workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		db:         db,
		workerRepo: workerRepo,
	}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	rate := req.DailyRate
	created, err := s.workerRepo.Create(ctx, worker.Worker{
		Name:      req.Name,
		Role:      req.Role,
		DailyRate: &rate,
		IsActive:  true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapToResponse(w), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context, activeOnly bool) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, mapToResponse(w))
	}

	return result, nil
}

// Update applies the patch and re-reads the row inside one transaction so
// the returned state is the state that was written.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	var updated worker.Worker
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.workerRepo.Update(txCtx, req); err != nil {
			return err
		}

		w, err := s.workerRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		updated = w

		return nil
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapToResponse(updated), nil
}

// Deactivate flips is_active off; workers are never hard-deleted so
// attendance and payment history stays intact.
func (s *WorkerServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.workerRepo.Deactivate(ctx, id)
}

func mapToResponse(w worker.Worker) worker.WorkerResponse {
	resp := worker.WorkerResponse{
		ID:       w.ID,
		Name:     w.Name,
		Role:     w.Role,
		IsActive: w.IsActive,
	}
	if w.DailyRate != nil {
		resp.DailyRate = *w.DailyRate
	}
	return resp
}
