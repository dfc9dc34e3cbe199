package profile

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

type ProfileResponse struct {
	StaffID            int    `json:"staff_id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	Department         string `json:"department"`
	Position           string `json:"position,omitempty"`
	ReportingManagerID *int   `json:"reporting_manager_id,omitempty"`
}
