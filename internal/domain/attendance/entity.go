package attendance

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/shift"
)

// EmployeeContext carries the slice of the employee record the
// reconciler needs. It is supplied by the caller per call; the
// reconciler never looks the employee up itself.
type EmployeeContext struct {
	ID      string
	Name    string
	Email   string
	BossID  *string
	ShiftID string
	RoleID  int
}

// Record is one reconciled working day for one employee. The date is
// implied by EarliestEnterTime. Records are built fresh on every
// reconciliation and never mutated afterwards.
type Record struct {
	Employee          EmployeeContext
	Shift             shift.Shift
	EarliestEnterTime time.Time
	LatestExitTime    time.Time
	MinutesLate       int
}
