package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	WorkerID string           `json:"worker_id"`
	Date     string           `json:"date"`
	Status   string           `json:"status"`
	Hours    *decimal.Decimal `json:"hours"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Absent, Leave, Half-Day",
		})
	}

	if r.Hours != nil && r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID     string           `json:"-"`
	Status string           `json:"status"`
	Hours  *decimal.Decimal `json:"hours"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Absent, Leave, Half-Day",
		})
	}

	if r.Hours != nil && r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID         string           `json:"id"`
	WorkerID   string           `json:"worker_id"`
	WorkerName string           `json:"worker_name,omitempty"`
	WorkerRole string           `json:"worker_role,omitempty"`
	Date       string           `json:"date"`
	Status     string           `json:"status"`
	Hours      *decimal.Decimal `json:"hours,omitempty"`
}
