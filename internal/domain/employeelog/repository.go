package employeelog

import (
	"context"
	"time"
)

// LogRepository defines data access for raw clock events. The
// reconciler fetches all logs for an employee unfiltered; any date
// windowing happens in the service layer.
type LogRepository interface {
	// Record stores a clock event for the employee at the given instant.
	Record(ctx context.Context, employeeID string, action string, timestamp time.Time) error

	// ListAll retrieves every log joined with employee name and email.
	ListAll(ctx context.Context) ([]Log, error)

	// ListByEmployeeID retrieves all logs for one employee, joined with
	// employee name and email, ordered by timestamp ascending.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Log, error)
}
