package dto

// LoginRequest body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token plus what the frontend needs to
// route the user (role, plant, forced password change).
type LoginResponse struct {
	Token               string  `json:"token"`
	Role                string  `json:"role"`
	PlantID             *string `json:"plant_id"`
	ForcePasswordChange bool    `json:"force_password_change"`
}

// ChangePasswordRequest body for POST /api/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}
