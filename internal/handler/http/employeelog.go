package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employeelog"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type LogHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type logHandlerImpl struct {
	logService employeelog.LogService
}

func NewLogHandler(logService employeelog.LogService) LogHandler {
	return &logHandlerImpl{
		logService: logService,
	}
}

// Record implements LogHandler.
func (h *logHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req employeelog.RecordLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode log request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.logService.RecordEntry(r.Context(), employeeID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Log recorded", nil)
}

// ListAll implements LogHandler.
func (h *logHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logService.AllLogs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// ListByEmployee implements LogHandler.
func (h *logHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee id is required", nil)
		return
	}

	logs, err := h.logService.LogsByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
