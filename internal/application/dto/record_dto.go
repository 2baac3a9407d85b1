package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de la fecha de filtro (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CreateRecordRequest entrada para registrar un consumo. El total nunca viene del cliente.
type CreateRecordRequest struct {
	Partner  string `json:"partner" validate:"required,uuid"`
	Product  string `json:"product" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"min=1,max=1000"`
	Employee string `json:"employee" validate:"omitempty,uuid"`
}

func (r *CreateRecordRequest) Normalize() {
	r.Partner = strings.TrimSpace(r.Partner)
	r.Product = strings.TrimSpace(r.Product)
	r.Employee = strings.TrimSpace(r.Employee)
}

// ListRecordsRequest filtros del historial.
type ListRecordsRequest struct {
	PageRequest
	Date      string `query:"date"`
	PartnerID string `query:"partner"`
}

// RecordPartner referencia enriquecida al socio.
type RecordPartner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// RecordProduct referencia enriquecida al producto.
type RecordProduct struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Credits decimal.Decimal `json:"credits"`
}

// RecordEmployee referencia enriquecida al empleado.
type RecordEmployee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// RecordResponse registro con las referencias actuales y las instantáneas de nombre.
type RecordResponse struct {
	ID           string          `json:"id"`
	Partner      RecordPartner   `json:"partner"`
	Product      RecordProduct   `json:"product"`
	Employee     *RecordEmployee `json:"employee,omitempty"`
	PartnerName  string          `json:"partnerName"`
	ProductName  string          `json:"productName"`
	EmployeeName string          `json:"employeeName,omitempty"`
	Quantity     int             `json:"quantity"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// RecordListResponse historial paginado.
type RecordListResponse struct {
	Records    []RecordResponse `json:"records"`
	Pagination Pagination       `json:"pagination"`
}

// TopProductDTO fila del ranking de productos.
type TopProductDTO struct {
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalCredits  decimal.Decimal `json:"totalCredits"`
	Count         int             `json:"count"`
}

// RecordStatsDTO respuesta de GET /records/stats.
type RecordStatsDTO struct {
	TotalRecords int             `json:"totalRecords"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	TopProducts  []TopProductDTO `json:"topProducts"`
}
