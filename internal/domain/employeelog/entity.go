package employeelog

import (
	"strings"
	"time"
)

// Log actions as recorded by badge readers. Matching is case-insensitive
// because readers from different vendors report "Enter"/"ENTER"/"enter".
const (
	ActionEnter = "enter"
	ActionExit  = "exit"
)

type Log struct {
	ID         string
	EmployeeID string
	Action     string
	Timestamp  time.Time

	// EmployeeName and EmployeeEmail are display columns joined from the
	// employees table. Nil when the employee row no longer exists.
	EmployeeName  *string
	EmployeeEmail *string
}

// IsEnter reports whether the log is an entry swipe.
func (l Log) IsEnter() bool {
	return strings.EqualFold(l.Action, ActionEnter)
}

// IsExit reports whether the log is an exit swipe.
func (l Log) IsExit() bool {
	return strings.EqualFold(l.Action, ActionExit)
}
