package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/attendance"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/payment"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/payroll"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
)

var (
	eight = decimal.NewFromInt(8)
	half  = decimal.New(5, -1) // 0.5
)

type PayrollServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    payment.WorkerPaymentRepository
}

func NewPayrollService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	paymentRepo payment.WorkerPaymentRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
	}
}

// Calculate produces one row per currently-active worker for the inclusive
// [start, end] range, ordered by worker name ascending.
//
// Pay rules per collapsed attendance day:
//   - Present: hours default to 8 when missing or non-positive. Up to 8
//     hours are paid pro-rated from the daily rate; hours beyond 8 are paid
//     as overtime at daily_rate/8 per hour.
//   - Half-Day: half the daily rate, any hours value ignored.
//   - Absent/Leave: nothing.
//
// Filtering is by the worker's *current* activation status, not status as
// of the period, so a since-deactivated worker's history is not reported.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, start, end time.Time) ([]payroll.PayrollRow, error) {
	rows := []payroll.PayrollRow{}

	if end.Before(start) {
		return rows, nil
	}

	workers, err := s.workerRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}
	if len(workers) == 0 {
		return rows, nil
	}

	records, err := s.attendanceRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	payments, err := s.paymentRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker payments: %w", err)
	}

	recordsByWorker := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		recordsByWorker[rec.WorkerID] = append(recordsByWorker[rec.WorkerID], rec)
	}
	paymentsByWorker := make(map[string][]payment.WorkerPayment)
	for _, p := range payments {
		paymentsByWorker[p.WorkerID] = append(paymentsByWorker[p.WorkerID], p)
	}

	for _, w := range workers {
		rows = append(rows, computeRow(w, recordsByWorker[w.ID], paymentsByWorker[w.ID]))
	}

	return rows, nil
}

// computeRow aggregates one worker's collapsed attendance and payment
// ledger into a payroll row. A worker with no records in range still gets
// a row; advances and payments then drive the net negative.
func computeRow(w worker.Worker, records []attendance.Attendance, payments []payment.WorkerPayment) payroll.PayrollRow {
	rate := resolveRate(w.DailyRate)

	gross := decimal.Zero
	overtimeTotal := decimal.Zero
	workedDays := decimal.Zero
	daysPresent := 0
	halfDays := 0

	for _, rec := range collapseByDay(records) {
		switch rec.Status {
		case attendance.StatusPresent:
			hours := resolveHours(rec.Hours)

			baseHours := decimal.Min(hours, eight)
			overtime := decimal.Max(decimal.Zero, hours.Sub(eight))

			basePay := baseHours.Div(eight).Mul(rate)
			overtimePay := overtime.Mul(rate.Div(eight))
			gross = gross.Add(basePay).Add(overtimePay)

			if baseHours.IsPositive() {
				daysPresent++
			}
			overtimeTotal = overtimeTotal.Add(overtime)
			workedDays = workedDays.Add(baseHours.Div(eight)).Add(overtime.Div(eight))

		case attendance.StatusHalfDay:
			gross = gross.Add(rate.Mul(half))
			halfDays++
			workedDays = workedDays.Add(half)
		}
		// Absent and Leave accumulate nothing
	}

	advances := decimal.Zero
	paymentsDone := decimal.Zero
	for _, p := range payments {
		switch p.Type {
		case payment.TypeAdvance:
			advances = advances.Add(p.Amount)
		case payment.TypePayment:
			paymentsDone = paymentsDone.Add(p.Amount)
		}
	}

	net := gross.Sub(advances).Sub(paymentsDone)

	return payroll.PayrollRow{
		WorkerID:             w.ID,
		WorkerName:           w.Name,
		DailyRate:            rate,
		DaysPresent:          daysPresent,
		HalfDays:             halfDays,
		OvertimeHours:        overtimeTotal,
		WorkedDaysEquivalent: workedDays.Round(3),
		GrossSalary:          gross.Round(2),
		TotalAdvance:         advances.Round(2),
		TotalPaymentDone:     paymentsDone.Round(2),
		NetPayable:           net.Round(2),
	}
}

// collapseByDay reduces raw records to at most one per calendar day.
// Input must already be ordered by (date, created_at, id) ascending; the
// last record seen for a day wins.
func collapseByDay(records []attendance.Attendance) map[string]attendance.Attendance {
	byDay := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byDay[rec.Date.Format("2006-01-02")] = rec
	}
	return byDay
}

// resolveHours applies the Present-day hours default: missing or
// non-positive hours count as a full 8-hour day.
func resolveHours(hours *decimal.Decimal) decimal.Decimal {
	if hours == nil || !hours.IsPositive() {
		return eight
	}
	return *hours
}

// resolveRate coerces a missing daily rate to zero rather than failing.
func resolveRate(rate *decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}
	return *rate
}
