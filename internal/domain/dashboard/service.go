package dashboard

import (
	"context"
	"time"
)

// DashboardService derives KPIs and alerts from stored data. Both methods
// are pure reads; "today" is passed in explicitly so the aggregations stay
// functions of their inputs.
type DashboardService interface {
	GetSummary(ctx context.Context, today time.Time) (SummaryResponse, error)
	CheckNotifications(ctx context.Context, today time.Time) ([]string, error)
}
