package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves the full employee directory. Role filtering is done
	// by callers; the directory is small enough to scan in memory.
	List(ctx context.Context) ([]Employee, error)
}
