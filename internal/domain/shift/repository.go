package shift

import "context"

// ShiftRepository defines data access for the shift catalog.
// ListByID returns zero or more shifts: the catalog does not enforce a
// one-shift-per-id invariant, so callers take the first result and
// treat an empty list as not found.
type ShiftRepository interface {
	ListByID(ctx context.Context, shiftID string) ([]Shift, error)
}
