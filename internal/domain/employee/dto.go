package employee

type EmployeeResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	BossID  *string `json:"boss_id,omitempty"`
	ShiftID string  `json:"shift_id"`
	RoleID  int     `json:"role_id"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:      e.ID,
		Name:    e.Name,
		Email:   e.Email,
		BossID:  e.BossID,
		ShiftID: e.ShiftID,
		RoleID:  e.RoleID,
	}
}
