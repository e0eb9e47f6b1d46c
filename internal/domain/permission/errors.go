package permission

import "errors"

var (
	ErrPermissionNotFound         = errors.New("permission not found")
	ErrPermissionAlreadyProcessed = errors.New("permission has already been approved or rejected")
	ErrNotPermissionTarget        = errors.New("only the target employee can review this permission")
)
