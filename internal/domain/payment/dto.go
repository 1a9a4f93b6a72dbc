package payment

import (
	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

// ========================================
// WORKER PAYMENT DTOs
// ========================================

type CreateWorkerPaymentRequest struct {
	WorkerID string          `json:"worker_id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
	Notes    string          `json:"notes"`
}

func (r *CreateWorkerPaymentRequest) Validate() error {
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

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(TypePayment), string(TypeAdvance)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be PAYMENT or ADVANCE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerPaymentResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	WorkerName string          `json:"worker_name,omitempty"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Notes      string          `json:"notes,omitempty"`
}
