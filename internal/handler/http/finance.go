package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/finance"
	"github.com/techniqueiron/ironworks-backend-go/internal/handler/http/response"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

type FinanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ExpenseTotals(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

func (h *financeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create transaction request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", result)
}

func (h *financeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var start, end *time.Time

	if raw := r.URL.Query().Get("start"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "Query parameter 'start' must be in YYYY-MM-DD format", nil)
			return
		}
		start = &date
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "Query parameter 'end' must be in YYYY-MM-DD format", nil)
			return
		}
		end = &date
	}

	result, err := h.financeService.List(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) ExpenseTotals(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.ExpenseTotals(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
