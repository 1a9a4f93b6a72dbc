package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/attendance"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
	}
}

// Mark updates the existing record for (worker, date) in place when one
// exists, otherwise inserts. Two sessions marking the same pair at once
// resolve last-write-wins; there is no optimistic locking.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.FindByWorkerAndDate(ctx, req.WorkerID, date)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	if err == nil {
		if err := s.attendanceRepo.UpdateRecord(ctx, existing.ID, req.Status, req.Hours); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		updated, err := s.attendanceRepo.GetByID(ctx, existing.ID)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return mapToResponse(updated), nil
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		WorkerID: req.WorkerID,
		Date:     date,
		Status:   req.Status,
		Hours:    req.Hours,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.attendanceRepo.UpdateRecord(ctx, req.ID, req.Status, req.Hours); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return mapToResponses(records), nil
}

func (s *AttendanceServiceImpl) ListRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return mapToResponses(records), nil
}

func mapToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:       a.ID,
		WorkerID: a.WorkerID,
		Date:     a.Date.Format("2006-01-02"),
		Status:   a.Status,
		Hours:    a.Hours,
	}
	if a.WorkerName != nil {
		resp.WorkerName = *a.WorkerName
	}
	if a.WorkerRole != nil {
		resp.WorkerRole = *a.WorkerRole
	}
	return resp
}

func mapToResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, mapToResponse(a))
	}
	return result
}
