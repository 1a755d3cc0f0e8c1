package entity

import "time"

// Roles for User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User is a system account. Operators are pinned to one plant; admins are
// plant-less and may manage everything.
type User struct {
	ID                  string
	Username            string
	PasswordHash        string // bcrypt hash, never the plain password
	Role                string // admin, operator
	PlantID             *string
	Active              bool
	ForcePasswordChange bool
	TokenVersion        int // bumped on password change to invalidate old tokens
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
