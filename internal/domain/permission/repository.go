package permission

import "context"

// PermissionRepository defines data access for leave permissions.
type PermissionRepository interface {
	// Create stores a new permission request
	Create(ctx context.Context, p Permission) (Permission, error)

	// GetByID retrieves a single permission
	GetByID(ctx context.Context, id string) (Permission, error)

	// UpdateStatus sets the review outcome for a permission
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ListRelatedToEmployee retrieves permissions where the employee is
	// the requester or the target, or where the target is the employee's
	// boss, ordered by begin date descending.
	ListRelatedToEmployee(ctx context.Context, employeeID string) ([]Permission, error)
}
