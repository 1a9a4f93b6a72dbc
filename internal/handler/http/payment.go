package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/payment"
	"github.com/techniqueiron/ironworks-backend-go/internal/handler/http/response"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

func (h *paymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payment.CreateWorkerPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create worker payment request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker payment recorded", result)
}

func (h *paymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var workerID *string
	if raw := r.URL.Query().Get("worker_id"); raw != "" {
		if !validator.IsValidUUID(raw) {
			response.BadRequest(w, "Query parameter 'worker_id' must be a valid UUID", nil)
			return
		}
		workerID = &raw
	}

	result, err := h.paymentService.List(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *paymentHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	start, ok := validator.IsValidDate(r.URL.Query().Get("start"))
	if !ok {
		response.BadRequest(w, "Query parameter 'start' must be in YYYY-MM-DD format", nil)
		return
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end"))
	if !ok {
		response.BadRequest(w, "Query parameter 'end' must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.paymentService.ListRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
