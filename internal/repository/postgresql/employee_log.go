package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employeelog"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type logRepository struct {
	db *database.DB
}

// Record implements employeelog.LogRepository.
// The insert selects from employees so an unknown employee id records
// nothing instead of violating the foreign key.
func (r *logRepository) Record(ctx context.Context, employeeID string, action string, timestamp time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_logs (id, employee_id, action, logged_at)
		SELECT $1, e.id, $2, $3
		FROM employees e
		WHERE e.id = $4
	`

	tag, err := q.Exec(ctx, query, uuid.New().String(), action, timestamp, employeeID)
	if err != nil {
		return fmt.Errorf("failed to record log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employeelog.ErrEmployeeNotFound
	}

	return nil
}

// ListAll implements employeelog.LogRepository.
func (r *logRepository) ListAll(ctx context.Context) ([]employeelog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.action, l.logged_at,
			   e.name AS employee_name,
			   e.email AS employee_email
		FROM employee_logs l
		LEFT JOIN employees e ON e.id = l.employee_id
		ORDER BY l.logged_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// ListByEmployeeID implements employeelog.LogRepository.
func (r *logRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]employeelog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.action, l.logged_at,
			   e.name AS employee_name,
			   e.email AS employee_email
		FROM employee_logs l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1
		ORDER BY l.logged_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs by employee: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

func scanLogs(rows pgx.Rows) ([]employeelog.Log, error) {
	var logs []employeelog.Log
	for rows.Next() {
		var l employeelog.Log
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Action, &l.Timestamp, &l.EmployeeName, &l.EmployeeEmail); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate log rows: %w", err)
	}
	return logs, nil
}

func NewLogRepository(db *database.DB) employeelog.LogRepository {
	return &logRepository{db: db}
}
