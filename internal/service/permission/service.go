package permission

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/permission"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

type PermissionServiceImpl struct {
	db *database.DB
	permission.PermissionRepository
	employee.EmployeeRepository
}

// Request implements permission.PermissionService.
func (s *PermissionServiceImpl) Request(ctx context.Context, requesterID string, req permission.RequestPermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.TargetEmployeeID); err != nil {
		return permission.PermissionResponse{}, fmt.Errorf("failed to resolve target employee: %w", err)
	}

	begin, end := req.Interval()
	created, err := s.PermissionRepository.Create(ctx, permission.Permission{
		RequesterID:      requesterID,
		TargetEmployeeID: req.TargetEmployeeID,
		Status:           permission.StatusPending,
		BeginDate:        begin,
		EndDate:          end,
		Reason:           req.Reason,
	})
	if err != nil {
		return permission.PermissionResponse{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return toResponse(created), nil
}

// Review implements permission.PermissionService.
// The read-check-update runs in one transaction so two reviewers cannot
// both process the same pending permission.
func (s *PermissionServiceImpl) Review(ctx context.Context, reviewerID string, req permission.ReviewPermissionRequest) (permission.PermissionResponse, error) {
	var p permission.Permission

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		var err error
		p, err = s.PermissionRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get permission: %w", err)
		}

		if p.TargetEmployeeID != reviewerID {
			return permission.ErrNotPermissionTarget
		}
		if p.Status != permission.StatusPending {
			return permission.ErrPermissionAlreadyProcessed
		}

		status := permission.StatusRejected
		if req.Approve {
			status = permission.StatusApproved
		}

		if err := s.PermissionRepository.UpdateStatus(txCtx, p.ID, status); err != nil {
			return fmt.Errorf("failed to update permission status: %w", err)
		}

		p.Status = status
		return nil
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	return toResponse(p), nil
}

// RelatedToEmployee implements permission.PermissionService.
func (s *PermissionServiceImpl) RelatedToEmployee(ctx context.Context, employeeID string) ([]permission.PermissionResponse, error) {
	permissions, err := s.PermissionRepository.ListRelatedToEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions for employee %s: %w", employeeID, err)
	}

	responses := make([]permission.PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

func toResponse(p permission.Permission) permission.PermissionResponse {
	return permission.PermissionResponse{
		ID:               p.ID,
		RequesterID:      p.RequesterID,
		TargetEmployeeID: p.TargetEmployeeID,
		Status:           string(p.Status),
		BeginDate:        p.BeginDate.Format("2006-01-02 15:04:05"),
		EndDate:          p.EndDate.Format("2006-01-02 15:04:05"),
		Reason:           p.Reason,
		CreatedAt:        p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewPermissionService(
	db *database.DB,
	permissionRepo permission.PermissionRepository,
	employeeRepo employee.EmployeeRepository,
) permission.PermissionService {
	return &PermissionServiceImpl{
		db:                   db,
		PermissionRepository: permissionRepo,
		EmployeeRepository:   employeeRepo,
	}
}
