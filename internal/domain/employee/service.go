package employee

import "context"

// EmployeeService defines business logic for directory lookups
type EmployeeService interface {
	// GetByID retrieves a single directory entry
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves the full directory as response projections
	List(ctx context.Context) ([]EmployeeResponse, error)
}
