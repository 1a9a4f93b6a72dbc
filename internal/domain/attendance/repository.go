package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for attendance records.
//
// ListByDate joins worker name/role and orders by worker name ascending.
// ListRange joins worker name/role/daily_rate and orders by
// (date, created_at, id) ascending; that ordering is what makes the
// last-wins day collapse in the payroll engine deterministic.
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	FindByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (Attendance, error)
	UpdateRecord(ctx context.Context, id string, status string, hours *decimal.Decimal) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	ListRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
}
