package http

import (
	"net/http"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/payroll"
	"github.com/techniqueiron/ironworks-backend-go/internal/handler/http/response"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.payrollService.Calculate(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
