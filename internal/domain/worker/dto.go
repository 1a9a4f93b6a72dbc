package worker

import (
	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

// ========================================
// WORKER DTOs
// ========================================

type CreateWorkerRequest struct {
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID        string           `json:"-"`
	Name      *string          `json:"name"`
	Role      *string          `json:"role"`
	DailyRate *decimal.Decimal `json:"daily_rate"`
	IsActive  *bool            `json:"is_active"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	IsActive  bool            `json:"is_active"`
}
