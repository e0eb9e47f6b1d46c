package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employeelog"
	"github.com/stafftrack/attendance-backend-go/internal/domain/permission"
	"github.com/stafftrack/attendance-backend-go/internal/domain/shift"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
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
		Unauthorized(w, "Invalid or missing token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employeelog.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrShiftNotFound),
		errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, attendance.ErrShiftWindowInvalid):
		BadRequest(w, "Shift start or end time is missing or invalid", nil)

	// Permission domain errors
	case errors.Is(err, permission.ErrPermissionNotFound):
		NotFound(w, "Permission not found")
	case errors.Is(err, permission.ErrPermissionAlreadyProcessed):
		Conflict(w, "Permission already processed")
	case errors.Is(err, permission.ErrNotPermissionTarget):
		Forbidden(w, "Only the target employee can review this permission")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
