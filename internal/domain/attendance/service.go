package attendance

import (
	"context"
)

// AttendanceService defines the reconciliation operations.
type AttendanceService interface {
	// Reconcile builds the month-to-date attendance report for one
	// employee, most recent day first.
	Reconcile(ctx context.Context, employeeID string, emp EmployeeContext) ([]Record, error)

	// AttendanceByRoles runs Reconcile for every employee whose role is
	// in roleIDs and collects the non-empty reports in directory order.
	AttendanceByRoles(ctx context.Context, roleIDs []int) ([][]Record, error)
}
