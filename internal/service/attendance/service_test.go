package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/attendance"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

const (
	workerID  = "7b8a1f7e-1111-4c2a-9d3e-0a0a0a0a0a01"
	unknownID = "7b8a1f7e-2222-4c2a-9d3e-0a0a0a0a0a02"
)

type memoryAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newMemoryAttendanceRepo() *memoryAttendanceRepo {
	return &memoryAttendanceRepo{records: map[string]attendance.Attendance{}}
}

func (m *memoryAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.nextID++
	a.ID = "att-" + strconv.Itoa(m.nextID)
	m.records[a.ID] = a
	return a, nil
}

func (m *memoryAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	a, ok := m.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (m *memoryAttendanceRepo) FindByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (attendance.Attendance, error) {
	for _, a := range m.records {
		if a.WorkerID == workerID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *memoryAttendanceRepo) UpdateRecord(ctx context.Context, id string, status string, hours *decimal.Decimal) error {
	a, ok := m.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	a.Status = status
	a.Hours = hours
	m.records[id] = a
	return nil
}

func (m *memoryAttendanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memoryAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, a := range m.records {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryAttendanceRepo) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, a := range m.records {
		if a.Date.Before(start) || a.Date.After(end) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type singleWorkerRepo struct{}

func (s *singleWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (s *singleWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	if id == workerID {
		return worker.Worker{ID: workerID, Name: "Arun", IsActive: true}, nil
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (s *singleWorkerRepo) List(ctx context.Context, activeOnly bool) ([]worker.Worker, error) {
	return nil, nil
}

func (s *singleWorkerRepo) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	return nil
}

func (s *singleWorkerRepo) Deactivate(ctx context.Context, id string) error { return nil }

func (s *singleWorkerRepo) CountActive(ctx context.Context) (int64, error) { return 1, nil }

func hoursPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestMarkCreatesNewRecord(t *testing.T) {
	repo := newMemoryAttendanceRepo()
	svc := NewAttendanceService(repo, &singleWorkerRepo{})

	resp, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: workerID,
		Date:     "2026-03-02",
		Status:   attendance.StatusPresent,
		Hours:    hoursPtr("9"),
	})
	require.NoError(t, err)
	assert.Equal(t, workerID, resp.WorkerID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Len(t, repo.records, 1)
}

func TestMarkUpdatesExistingRecordInPlace(t *testing.T) {
	repo := newMemoryAttendanceRepo()
	svc := NewAttendanceService(repo, &singleWorkerRepo{})

	first, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: workerID,
		Date:     "2026-03-02",
		Status:   attendance.StatusPresent,
		Hours:    hoursPtr("9"),
	})
	require.NoError(t, err)

	second, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: workerID,
		Date:     "2026-03-02",
		Status:   attendance.StatusHalfDay,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusHalfDay, second.Status)
	assert.Len(t, repo.records, 1)
}

func TestMarkUnknownWorker(t *testing.T) {
	svc := NewAttendanceService(newMemoryAttendanceRepo(), &singleWorkerRepo{})

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: unknownID,
		Date:     "2026-03-02",
		Status:   attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestMarkValidation(t *testing.T) {
	svc := NewAttendanceService(newMemoryAttendanceRepo(), &singleWorkerRepo{})

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: "not-a-uuid",
		Date:     "02-03-2026",
		Status:   "Working",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "worker_id")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "status")
}

func TestMarkRejectsNegativeHours(t *testing.T) {
	svc := NewAttendanceService(newMemoryAttendanceRepo(), &singleWorkerRepo{})

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: workerID,
		Date:     "2026-03-02",
		Status:   attendance.StatusPresent,
		Hours:    hoursPtr("-1"),
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "hours")
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := newMemoryAttendanceRepo()
	svc := NewAttendanceService(repo, &singleWorkerRepo{})

	resp, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		WorkerID: workerID,
		Date:     "2026-03-02",
		Status:   attendance.StatusAbsent,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.Empty(t, repo.records)

	err = svc.Delete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
