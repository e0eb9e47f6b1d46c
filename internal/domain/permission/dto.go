package permission

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// RequestPermissionRequest is the payload for creating a leave request.
// Dates are ISO8601 timestamps; the interval is inclusive on both ends.
type RequestPermissionRequest struct {
	TargetEmployeeID string  `json:"target_employee_id"`
	BeginDate        string  `json:"begin_date"`
	EndDate          string  `json:"end_date"`
	Reason           *string `json:"reason,omitempty"`

	begin time.Time
	end   time.Time
}

func (r *RequestPermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TargetEmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "target_employee_id", Message: "target employee is required"})
	}

	begin, ok := validator.IsValidDateTime(r.BeginDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "begin_date", Message: "must be a valid ISO8601 timestamp"})
	}
	end, ok := validator.IsValidDateTime(r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid ISO8601 timestamp"})
	}

	if len(errs) == 0 && end.Before(begin) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before begin_date"})
	}

	if len(errs) > 0 {
		return errs
	}

	r.begin = begin
	r.end = end
	return nil
}

// Interval returns the parsed bounds. Valid only after Validate.
func (r *RequestPermissionRequest) Interval() (time.Time, time.Time) {
	return r.begin, r.end
}

// ReviewPermissionRequest is the payload for approving or rejecting a
// pending permission.
type ReviewPermissionRequest struct {
	ID      string `json:"-"`
	Approve bool   `json:"approve"`
}

type PermissionResponse struct {
	ID               string  `json:"id"`
	RequesterID      string  `json:"requester_id"`
	TargetEmployeeID string  `json:"target_employee_id"`
	Status           string  `json:"status"`
	BeginDate        string  `json:"begin_date"`
	EndDate          string  `json:"end_date"`
	Reason           *string `json:"reason,omitempty"`
	CreatedAt        string  `json:"created_at"`
}
