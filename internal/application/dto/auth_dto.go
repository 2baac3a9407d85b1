package dto

import (
	"strings"
	"time"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest alta de un principal de login (solo super-admin).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"oneof=admin super-admin"`
	Position string `json:"position" validate:"max=50"`
	Schedule string `json:"schedule" validate:"max=200"`
}

// Normalize normaliza el username y aplica el rol por defecto.
func (r *RegisterRequest) Normalize() {
	r.Username = NormalizeUsername(r.Username)
	r.Name = strings.TrimSpace(r.Name)
	r.Position = strings.TrimSpace(r.Position)
	r.Schedule = strings.TrimSpace(r.Schedule)
	if strings.TrimSpace(r.Role) == "" {
		r.Role = "admin"
	}
}

// PrincipalResponse salida de un principal (sin password).
type PrincipalResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Position  string    `json:"position,omitempty"`
	Schedule  string    `json:"schedule,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse token JWT más el resumen del principal.
type LoginResponse struct {
	Token string            `json:"token"`
	User  PrincipalResponse `json:"user"`
}
