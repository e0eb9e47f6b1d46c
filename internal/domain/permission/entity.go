package permission

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Permission is a leave/permission interval requested by an employee.
// BeginDate and EndDate are inclusive date-time bounds. Only approved
// permissions participate in attendance excusal.
type Permission struct {
	ID               string
	RequesterID      string
	TargetEmployeeID string
	Status           Status
	BeginDate        time.Time
	EndDate          time.Time
	Reason           *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
