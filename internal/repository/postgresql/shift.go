package postgresql

import (
	"context"
	"fmt"

	"github.com/stafftrack/attendance-backend-go/internal/domain/shift"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

// ListByID implements shift.ShiftRepository.
// Returns all rows matching the id; the catalog schema does not enforce
// uniqueness, so callers take the first result.
func (r *shiftRepository) ListByID(ctx context.Context, shiftID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_start, work_end
		FROM shifts
		WHERE id = $1
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.WorkStart, &s.WorkEnd); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift rows: %w", err)
	}

	return shifts, nil
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}
