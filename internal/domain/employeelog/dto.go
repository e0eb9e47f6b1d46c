package employeelog

import (
	"strings"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// RecordLogRequest is the payload for recording a clock event.
type RecordLogRequest struct {
	Action string `json:"action"`
}

func (r RecordLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action is required"})
	} else if !validator.IsInSlice(strings.ToLower(r.Action), []string{ActionEnter, ActionExit}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action must be 'enter' or 'exit'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LogSummaryView is the flat projection served by the log listing
// endpoints: who swiped, what they did, and when (date and time split
// into separate display fields).
type LogSummaryView struct {
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	Action        string `json:"action"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
