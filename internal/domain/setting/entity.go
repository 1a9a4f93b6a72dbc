package setting

import "time"

// Known setting keys
const (
	KeyExpenseThreshold  = "expense_threshold"
	KeyFundFlowThreshold = "fund_flow_threshold"
)

// Setting is a key-value pair. Values are stored as text and parsed as
// numbers where possible; callers decide what a non-numeric value means.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
