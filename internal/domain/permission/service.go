package permission

import "context"

// PermissionService defines business logic for the leave permission
// lifecycle: request, review, list.
type PermissionService interface {
	// Request creates a pending permission on behalf of the requester
	Request(ctx context.Context, requesterID string, req RequestPermissionRequest) (PermissionResponse, error)

	// Review approves or rejects a pending permission; only the target
	// employee may review it
	Review(ctx context.Context, reviewerID string, req ReviewPermissionRequest) (PermissionResponse, error)

	// RelatedToEmployee lists permissions the employee requested or is
	// targeted by
	RelatedToEmployee(ctx context.Context, employeeID string) ([]PermissionResponse, error)
}
