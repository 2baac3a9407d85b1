package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name    string           `json:"name" validate:"required,min=2,max=100"`
	Credits *decimal.Decimal `json:"credits" validate:"required,gte=0,lte=9999"`
}

func (r *CreateProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name    *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Credits *decimal.Decimal `json:"credits" validate:"omitempty,gte=0,lte=9999"`
	Active  *bool            `json:"active"`
}

func (r *UpdateProductRequest) Normalize() {
	trim(r.Name, strings.TrimSpace)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Credits   decimal.Decimal `json:"credits"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
