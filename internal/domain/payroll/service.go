package payroll

import (
	"context"
	"time"
)

// PayrollService computes payroll rows for an inclusive [start, end] date
// range. An inverted range (end before start) yields an empty result, not
// an error.
type PayrollService interface {
	Calculate(ctx context.Context, start, end time.Time) ([]PayrollRow, error)
}
