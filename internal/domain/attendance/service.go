package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// Mark updates the existing record for (worker, date) in place when one
	// exists, otherwise inserts a new one.
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
	ListRange(ctx context.Context, start, end time.Time) ([]AttendanceResponse, error)
}
