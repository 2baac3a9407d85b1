package dto

import (
	"strings"
	"time"
)

// CreateEmployeeRequest alta de un empleado sin credenciales; las credenciales
// se crean con POST /auth/register.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Position string `json:"position" validate:"max=50"`
	Schedule string `json:"schedule" validate:"max=200"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Position = strings.TrimSpace(r.Position)
	r.Schedule = strings.TrimSpace(r.Schedule)
}

// UpdateEmployeeRequest actualización parcial de un empleado.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Position *string `json:"position" validate:"omitempty,max=50"`
	Schedule *string `json:"schedule" validate:"omitempty,max=200"`
	Active   *bool   `json:"active"`
}

func (r *UpdateEmployeeRequest) Normalize() {
	trim(r.Name, strings.TrimSpace)
	trim(r.Position, strings.TrimSpace)
	trim(r.Schedule, strings.TrimSpace)
}

// EmployeeResponse salida de un empleado (nunca incluye el hash).
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position,omitempty"`
	Schedule  string    `json:"schedule,omitempty"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
