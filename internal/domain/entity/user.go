package entity

import "time"

// Roles de los principales.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// ValidRole indica si role es un rol asignable.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// User principal de login sin datos de empleado (AUTH_SUBJECT=user).
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string // bcrypt, nunca se serializa
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
