package entity

import "time"

// Employee miembro del personal. Con Username no vacío además es principal de login
// cuando AUTH_SUBJECT=employee.
type Employee struct {
	ID           string
	Name         string
	Position     string
	Schedule     string
	Username     string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCredentials indica si el empleado puede iniciar sesión.
func (e *Employee) HasCredentials() bool {
	return e.Username != "" && e.PasswordHash != ""
}
