package employeelog

import (
	"context"
)

// LogService defines business logic for clock-event operations
type LogService interface {
	// RecordEntry records an enter/exit swipe for an employee
	RecordEntry(ctx context.Context, employeeID string, req RecordLogRequest) error

	// AllLogs lists every recorded swipe as a display projection
	AllLogs(ctx context.Context) ([]LogSummaryView, error)

	// LogsByEmployee lists one employee's swipes as a display projection
	LogsByEmployee(ctx context.Context, employeeID string) ([]LogSummaryView, error)
}
