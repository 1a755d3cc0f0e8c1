package dto

import "time"

// CreateUserRequest input for admin user creation. PlantID is mandatory for
// non-admin roles.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin operator"`
	PlantID  string `json:"plant_id,omitempty"`
}

// ResetPasswordRequest admin-side password reset.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UserResponse read model for one account (never carries the hash).
type UserResponse struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Role                string    `json:"role"`
	PlantID             *string   `json:"plant_id"`
	Active              bool      `json:"active"`
	ForcePasswordChange bool      `json:"force_password_change"`
	CreatedAt           time.Time `json:"created_at"`
}

// CreatePlantRequest input for plant creation.
type CreatePlantRequest struct {
	PlantID   string `json:"plant_id" validate:"required"`
	PlantName string `json:"plant_name" validate:"required"`
	Address   string `json:"address,omitempty"`
}

// PlantResponse read model for one plant.
type PlantResponse struct {
	PlantID   string    `json:"plant_id"`
	PlantName string    `json:"plant_name"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
