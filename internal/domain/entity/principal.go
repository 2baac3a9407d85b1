package entity

import "time"

// PrincipalKind origen del principal.
type PrincipalKind string

const (
	PrincipalEmployee PrincipalKind = "employee"
	PrincipalUser     PrincipalKind = "user"
)

// Principal vista común de quien se autentica, sea empleado o usuario.
type Principal struct {
	ID           string
	Kind         PrincipalKind
	Username     string
	Name         string
	PasswordHash string
	Role         string
	Position     string // solo empleados
	Schedule     string // solo empleados
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrincipalFromEmployee adapta un empleado con credenciales.
func PrincipalFromEmployee(e *Employee) *Principal {
	return &Principal{
		ID:           e.ID,
		Kind:         PrincipalEmployee,
		Username:     e.Username,
		Name:         e.Name,
		PasswordHash: e.PasswordHash,
		Role:         e.Role,
		Position:     e.Position,
		Schedule:     e.Schedule,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// PrincipalFromUser adapta un usuario.
func PrincipalFromUser(u *User) *Principal {
	return &Principal{
		ID:           u.ID,
		Kind:         PrincipalUser,
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
