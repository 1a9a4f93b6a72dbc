package payroll

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/attendance"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/payment"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
)

type fakeWorkerRepo struct {
	workers []worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers = append(f.workers, w)
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) List(ctx context.Context, activeOnly bool) ([]worker.Worker, error) {
	out := []worker.Worker{}
	for _, w := range f.workers {
		if activeOnly && !w.IsActive {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	return nil
}

func (f *fakeWorkerRepo) Deactivate(ctx context.Context, id string) error { return nil }

func (f *fakeWorkerRepo) CountActive(ctx context.Context) (int64, error) {
	n := int64(0)
	for _, w := range f.workers {
		if w.IsActive {
			n++
		}
	}
	return n, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) FindByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) UpdateRecord(ctx context.Context, id string, status string, hours *decimal.Decimal) error {
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ListRange preserves insertion order within a day, matching the
// (date, created_at, id) ordering the real repository guarantees.
func (f *fakeAttendanceRepo) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, rec := range f.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type fakePaymentRepo struct {
	payments []payment.WorkerPayment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p payment.WorkerPayment) (payment.WorkerPayment, error) {
	f.payments = append(f.payments, p)
	return p, nil
}

func (f *fakePaymentRepo) List(ctx context.Context, workerID *string) ([]payment.WorkerPayment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) ListRange(ctx context.Context, start, end time.Time) ([]payment.WorkerPayment, error) {
	out := []payment.WorkerPayment{}
	for _, p := range f.payments {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService(workers []worker.Worker, records []attendance.Attendance, payments []payment.WorkerPayment) *PayrollServiceImpl {
	return NewPayrollService(
		&fakeWorkerRepo{workers: workers},
		&fakeAttendanceRepo{records: records},
		&fakePaymentRepo{payments: payments},
	).(*PayrollServiceImpl)
}

func activeWorker(id, name, rate string) worker.Worker {
	return worker.Worker{ID: id, Name: name, DailyRate: decPtr(rate), IsActive: true}
}

func TestCalculateOvertimePay(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800")},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusPresent, Hours: decPtr("10")},
		},
		nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// 8 base hours = 800, 2 overtime hours at 100/h = 200
	assert.True(t, rows[0].GrossSalary.Equal(dec("1000")), "gross = %s", rows[0].GrossSalary)
	assert.Equal(t, 1, rows[0].DaysPresent)
	assert.True(t, rows[0].OvertimeHours.Equal(dec("2")))
	assert.True(t, rows[0].WorkedDaysEquivalent.Equal(dec("1.25")))
	assert.True(t, rows[0].NetPayable.Equal(dec("1000")))
}

func TestCalculateHoursDefaultToEight(t *testing.T) {
	for _, hours := range []*decimal.Decimal{nil, decPtr("0"), decPtr("-3")} {
		svc := newTestService(
			[]worker.Worker{activeWorker("w1", "Arun", "800")},
			[]attendance.Attendance{
				{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusPresent, Hours: hours},
			},
			nil,
		)

		rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].GrossSalary.Equal(dec("800")), "gross = %s", rows[0].GrossSalary)
		assert.Equal(t, 1, rows[0].DaysPresent)
		assert.True(t, rows[0].OvertimeHours.IsZero())
	}
}

func TestCalculateHalfDayIgnoresHours(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "1000")},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusHalfDay, Hours: decPtr("7")},
		},
		nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].GrossSalary.Equal(dec("500")))
	assert.Equal(t, 0, rows[0].DaysPresent)
	assert.Equal(t, 1, rows[0].HalfDays)
	assert.True(t, rows[0].WorkedDaysEquivalent.Equal(dec("0.5")))
}

func TestCalculateAbsentAndLeaveEarnNothing(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800")},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusAbsent},
			{ID: "a2", WorkerID: "w1", Date: day("2026-03-03"), Status: attendance.StatusLeave, Hours: decPtr("8")},
		},
		nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].GrossSalary.IsZero())
	assert.True(t, rows[0].WorkedDaysEquivalent.IsZero())
	assert.Equal(t, 0, rows[0].DaysPresent)
	assert.Equal(t, 0, rows[0].HalfDays)
}

func TestCalculateRowForWorkerWithoutRecords(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800")},
		nil,
		[]payment.WorkerPayment{
			{ID: "p1", WorkerID: "w1", Date: day("2026-03-10"), Amount: dec("300"), Type: payment.TypeAdvance},
		},
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].GrossSalary.IsZero())
	assert.True(t, rows[0].TotalAdvance.Equal(dec("300")))
	assert.True(t, rows[0].NetPayable.Equal(dec("-300")))
}

func TestCalculateLastRecordPerDayWins(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800")},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusPresent, Hours: decPtr("10")},
			{ID: "a2", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusHalfDay},
		},
		nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].GrossSalary.Equal(dec("400")))
	assert.Equal(t, 0, rows[0].DaysPresent)
	assert.Equal(t, 1, rows[0].HalfDays)
}

func TestCalculateNetConservation(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "733.33")},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusPresent, Hours: decPtr("9.5")},
			{ID: "a2", WorkerID: "w1", Date: day("2026-03-03"), Status: attendance.StatusPresent, Hours: decPtr("6")},
			{ID: "a3", WorkerID: "w1", Date: day("2026-03-04"), Status: attendance.StatusHalfDay},
		},
		[]payment.WorkerPayment{
			{ID: "p1", WorkerID: "w1", Date: day("2026-03-05"), Amount: dec("250.50"), Type: payment.TypeAdvance},
			{ID: "p2", WorkerID: "w1", Date: day("2026-03-06"), Amount: dec("100.25"), Type: payment.TypePayment},
		},
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	want := row.GrossSalary.Sub(row.TotalAdvance).Sub(row.TotalPaymentDone)
	assert.True(t, row.NetPayable.Equal(want), "net %s != gross-advance-payment %s", row.NetPayable, want)
}

func TestCalculateIsIdempotent(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800"), activeWorker("w2", "Babu", "600")},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusPresent, Hours: decPtr("9")},
			{ID: "a2", WorkerID: "w2", Date: day("2026-03-02"), Status: attendance.StatusHalfDay},
		},
		[]payment.WorkerPayment{
			{ID: "p1", WorkerID: "w1", Date: day("2026-03-03"), Amount: dec("200"), Type: payment.TypeAdvance},
		},
	)

	first, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateOrdersRowsByName(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{
			activeWorker("w1", "Chandran", "800"),
			activeWorker("w2", "Arun", "600"),
			activeWorker("w3", "Babu", "700"),
		},
		nil, nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Arun", rows[0].WorkerName)
	assert.Equal(t, "Babu", rows[1].WorkerName)
	assert.Equal(t, "Chandran", rows[2].WorkerName)
}

func TestCalculateExcludesInactiveWorkers(t *testing.T) {
	inactive := activeWorker("w2", "Babu", "600")
	inactive.IsActive = false

	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800"), inactive},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w2", Date: day("2026-03-02"), Status: attendance.StatusPresent},
		},
		nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Arun", rows[0].WorkerName)
}

func TestCalculateInvertedRangeIsEmpty(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800")},
		nil, nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-31"), day("2026-03-01"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCalculateMissingRateTreatedAsZero(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{{ID: "w1", Name: "Arun", IsActive: true}},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-03-02"), Status: attendance.StatusPresent, Hours: decPtr("10")},
		},
		nil,
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].GrossSalary.IsZero())
	assert.Equal(t, 1, rows[0].DaysPresent)
	assert.True(t, rows[0].OvertimeHours.Equal(dec("2")))
}

func TestCalculateExcludesRecordsOutsideRange(t *testing.T) {
	svc := newTestService(
		[]worker.Worker{activeWorker("w1", "Arun", "800")},
		[]attendance.Attendance{
			{ID: "a1", WorkerID: "w1", Date: day("2026-02-28"), Status: attendance.StatusPresent},
			{ID: "a2", WorkerID: "w1", Date: day("2026-03-01"), Status: attendance.StatusPresent},
			{ID: "a3", WorkerID: "w1", Date: day("2026-03-31"), Status: attendance.StatusPresent},
			{ID: "a4", WorkerID: "w1", Date: day("2026-04-01"), Status: attendance.StatusPresent},
		},
		[]payment.WorkerPayment{
			{ID: "p1", WorkerID: "w1", Date: day("2026-02-28"), Amount: dec("999"), Type: payment.TypeAdvance},
			{ID: "p2", WorkerID: "w1", Date: day("2026-03-15"), Amount: dec("100"), Type: payment.TypeAdvance},
		},
	)

	rows, err := svc.Calculate(context.Background(), day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].DaysPresent)
	assert.True(t, rows[0].GrossSalary.Equal(dec("1600")))
	assert.True(t, rows[0].TotalAdvance.Equal(dec("100")))
	assert.True(t, rows[0].NetPayable.Equal(dec("1500")))
}
