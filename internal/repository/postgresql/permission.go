package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/permission"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type permissionRepository struct {
	db *database.DB
}

// Create implements permission.PermissionRepository.
func (r *permissionRepository) Create(ctx context.Context, p permission.Permission) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.New().String()

	query := `
		INSERT INTO permissions (id, requester_id, target_employee_id, status, begin_date, end_date, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.RequesterID,
		p.TargetEmployeeID,
		p.Status,
		p.BeginDate,
		p.EndDate,
		p.Reason,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return p, nil
}

// GetByID implements permission.PermissionRepository.
func (r *permissionRepository) GetByID(ctx context.Context, id string) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, requester_id, target_employee_id, status, begin_date, end_date, reason, created_at, updated_at
		FROM permissions
		WHERE id = $1
	`

	var p permission.Permission
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.RequesterID, &p.TargetEmployeeID, &p.Status,
		&p.BeginDate, &p.EndDate, &p.Reason, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return permission.Permission{}, permission.ErrPermissionNotFound
		}
		return permission.Permission{}, fmt.Errorf("failed to get permission: %w", err)
	}

	return p, nil
}

// UpdateStatus implements permission.PermissionRepository.
func (r *permissionRepository) UpdateStatus(ctx context.Context, id string, status permission.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE permissions
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update permission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return permission.ErrPermissionNotFound
	}

	return nil
}

// ListRelatedToEmployee implements permission.PermissionRepository.
// Related means the employee requested the permission, is its target, or
// reports to the target.
func (r *permissionRepository) ListRelatedToEmployee(ctx context.Context, employeeID string) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.requester_id, p.target_employee_id, p.status, p.begin_date, p.end_date, p.reason, p.created_at, p.updated_at
		FROM permissions p
		WHERE p.requester_id = $1
		   OR p.target_employee_id = $1
		   OR p.target_employee_id = (SELECT e.boss_id FROM employees e WHERE e.id = $1)
		ORDER BY p.begin_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []permission.Permission
	for rows.Next() {
		var p permission.Permission
		if err := rows.Scan(
			&p.ID, &p.RequesterID, &p.TargetEmployeeID, &p.Status,
			&p.BeginDate, &p.EndDate, &p.Reason, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan permission row: %w", err)
		}
		permissions = append(permissions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permission rows: %w", err)
	}

	return permissions, nil
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepository{db: db}
}
