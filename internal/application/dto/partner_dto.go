package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
)

// CreatePartnerRequest entrada para crear un socio.
type CreatePartnerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Nickname string `json:"nickname" validate:"max=50"`
	DNI      string `json:"dni" validate:"dni"`
	Passport string `json:"passport" validate:"passport"`
	Email    string `json:"email" validate:"optemail"`
	Type     string `json:"type" validate:"oneof=Regular VIP Empresa Familiar"`
}

// Normalize recorta espacios, normaliza mayúsculas y aplica el tipo por defecto.
func (r *CreatePartnerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Nickname = strings.TrimSpace(r.Nickname)
	r.DNI = strings.ToUpper(strings.TrimSpace(r.DNI))
	r.Passport = strings.ToUpper(strings.TrimSpace(r.Passport))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Type = strings.TrimSpace(r.Type)
	if r.Type == "" {
		r.Type = string(entity.PartnerTypeRegular)
	}
}

// UpdatePartnerRequest actualización parcial; nil = no se modifica, "" borra un opcional.
type UpdatePartnerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
	DNI      *string `json:"dni" validate:"omitempty,dni"`
	Passport *string `json:"passport" validate:"omitempty,passport"`
	Email    *string `json:"email" validate:"omitempty,optemail"`
	Type     *string `json:"type" validate:"omitempty,oneof=Regular VIP Empresa Familiar"`
	Active   *bool   `json:"active"`
}

// Normalize aplica las mismas reglas que en la creación a los campos presentes.
func (r *UpdatePartnerRequest) Normalize() {
	trim(r.Name, strings.TrimSpace)
	trim(r.Nickname, strings.TrimSpace)
	trim(r.DNI, func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) })
	trim(r.Passport, func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) })
	trim(r.Email, func(s string) string { return strings.ToLower(strings.TrimSpace(s)) })
	trim(r.Type, strings.TrimSpace)
}

func trim(s *string, fn func(string) string) {
	if s != nil {
		*s = fn(*s)
	}
}

// PartnerResponse salida de un socio.
type PartnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname,omitempty"`
	DNI       string    `json:"dni,omitempty"`
	Passport  string    `json:"passport,omitempty"`
	Email     string    `json:"email,omitempty"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
