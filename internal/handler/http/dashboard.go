package http

import (
	"net/http"
	"time"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/dashboard"
	"github.com/techniqueiron/ironworks-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Notifications(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetSummary(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) Notifications(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.dashboardService.CheckNotifications(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard.NotificationsResponse{Messages: msgs})
}
