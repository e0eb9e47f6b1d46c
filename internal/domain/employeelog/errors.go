package employeelog

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found for log entry")
)
