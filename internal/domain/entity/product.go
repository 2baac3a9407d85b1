package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de créditos por producto.
var (
	MinCredits = decimal.Zero
	MaxCredits = decimal.NewFromInt(9999)
)

// Product artículo canjeable; Credits es su costo unitario en créditos.
type Product struct {
	ID        string
	Name      string // único
	Credits   decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cost créditos totales de canjear quantity unidades.
func (p *Product) Cost(quantity int) decimal.Decimal {
	return p.Credits.Mul(decimal.NewFromInt(int64(quantity)))
}
