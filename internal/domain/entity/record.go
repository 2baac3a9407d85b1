package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de cantidad por registro.
const (
	MinQuantity = 1
	MaxQuantity = 1000
)

// Record consumo de un socio (append-only). Los nombres son una instantánea al momento
// del canje; TotalCredits = Product.Credits × Quantity calculado en el servidor.
type Record struct {
	ID           string
	PartnerID    string
	ProductID    string
	EmployeeID   string // vacío = sin empleado
	PartnerName  string
	ProductName  string
	EmployeeName string
	Quantity     int
	TotalCredits decimal.Decimal
	CreatedAt    time.Time
}
