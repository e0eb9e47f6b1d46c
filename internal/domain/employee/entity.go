package employee

import "time"

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	BossID       *string
	ShiftID      string
	RoleID       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
