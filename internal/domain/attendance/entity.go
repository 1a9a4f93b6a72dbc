package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance status values
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
	StatusHalfDay = "Half-Day"
)

// Statuses lists every accepted attendance status.
var Statuses = []string{StatusPresent, StatusAbsent, StatusLeave, StatusHalfDay}

// Attendance is one raw record for a (worker, date) pair. Duplicates for
// the same day can exist in storage; readers resolve them last-wins under
// the (date, created_at, id) ordering.
type Attendance struct {
	ID        string
	WorkerID  string
	Date      time.Time
	Status    string
	Hours     *decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields from workers
	WorkerName *string
	WorkerRole *string
	DailyRate  *decimal.Decimal
}
