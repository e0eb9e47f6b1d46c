package attendance

import (
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// ContextFromEmployee maps a directory entry to the reconciler's input.
func ContextFromEmployee(e employee.Employee) EmployeeContext {
	return EmployeeContext{
		ID:      e.ID,
		Name:    e.Name,
		Email:   e.Email,
		BossID:  e.BossID,
		ShiftID: e.ShiftID,
		RoleID:  e.RoleID,
	}
}

// ByRolesRequest is the payload for the role-scoped batch report.
type ByRolesRequest struct {
	RoleIDs []int `json:"role_ids"`
}

func (r ByRolesRequest) Validate() error {
	if len(r.RoleIDs) == 0 {
		return validator.ValidationErrors{
			{Field: "role_ids", Message: "at least one role id is required"},
		}
	}
	return nil
}

// RecordResponse is the wire shape of a reconciled day.
type RecordResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ShiftID      string `json:"shift_id"`
	WorkStart    string `json:"work_start"`
	WorkEnd      string `json:"work_end"`
	Date         string `json:"date"`
	EnterTime    string `json:"enter_time"`
	ExitTime     string `json:"exit_time"`
	MinutesLate  int    `json:"minutes_late"`
}

// ToResponse converts a Record to its wire shape. The date comes from
// the earliest enter timestamp, matching the record's definition.
func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		EmployeeID:   r.Employee.ID,
		EmployeeName: r.Employee.Name,
		ShiftID:      r.Shift.ID,
		WorkStart:    r.Shift.WorkStart,
		WorkEnd:      r.Shift.WorkEnd,
		Date:         r.EarliestEnterTime.Format("2006-01-02"),
		EnterTime:    r.EarliestEnterTime.Format("15:04:05"),
		ExitTime:     r.LatestExitTime.Format("15:04:05"),
		MinutesLate:  r.MinutesLate,
	}
}
