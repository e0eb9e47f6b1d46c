package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendanceByRoles(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	employeeService   employee.EmployeeService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, employeeService employee.EmployeeService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		employeeService:   employeeService,
	}
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	h.reconcile(w, r, employeeID)
}

// GetEmployeeAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee id is required", nil)
		return
	}

	h.reconcile(w, r, employeeID)
}

func (h *attendanceHandlerImpl) reconcile(w http.ResponseWriter, r *http.Request, employeeID string) {
	emp, err := h.employeeService.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.Reconcile(r.Context(), emp.ID, attendance.ContextFromEmployee(emp))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	response.Success(w, responses)
}

// GetAttendanceByRoles implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetAttendanceByRoles(w http.ResponseWriter, r *http.Request) {
	var req attendance.ByRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode by-roles request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reports, err := h.attendanceService.AttendanceByRoles(r.Context(), req.RoleIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([][]attendance.RecordResponse, 0, len(reports))
	for _, records := range reports {
		perEmployee := make([]attendance.RecordResponse, 0, len(records))
		for _, rec := range records {
			perEmployee = append(perEmployee, attendance.ToResponse(rec))
		}
		responses = append(responses, perEmployee)
	}

	response.Success(w, responses)
}
