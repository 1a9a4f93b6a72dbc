package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/setting"
	"github.com/techniqueiron/ironworks-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

type settingPayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *settingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	defaultValue := r.URL.Query().Get("default")

	value, err := h.settingService.Get(r.Context(), key, defaultValue)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settingPayload{Key: key, Value: value})
}

func (h *settingHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req settingPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode set setting request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingService.Set(r.Context(), key, req.Value); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting updated", settingPayload{Key: key, Value: req.Value})
}
