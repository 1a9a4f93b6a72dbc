package response

import (
	"errors"
	"net/http"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/attendance"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/auth"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/setting"
	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Settings domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
