package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RecordFilter criterios de listado; los campos cero no filtran.
type RecordFilter struct {
	PartnerID string
	From      time.Time // inclusive
	To        time.Time // inclusive
}

// PartnerSummary datos actuales del socio unidos en lectura.
type PartnerSummary struct {
	ID    string
	Name  string
	Email string
}

// ProductSummary datos actuales del producto unidos en lectura.
type ProductSummary struct {
	ID      string
	Name    string
	Credits decimal.Decimal
}

// EmployeeSummary datos actuales del empleado unidos en lectura.
type EmployeeSummary struct {
	ID       string
	Name     string
	Username string
}

// RecordView registro enriquecido con las referencias actuales.
type RecordView struct {
	entity.Record
	Partner  PartnerSummary
	Product  ProductSummary
	Employee *EmployeeSummary // nil si el registro no tiene empleado
}

// ProductRanking fila del top de productos.
type ProductRanking struct {
	ProductID     string
	Name          string // nombre actual del producto
	TotalQuantity int
	TotalCredits  decimal.Decimal
	Count         int
}

// RecordStats resultado crudo de las estadísticas del ledger.
type RecordStats struct {
	TotalRecords int
	TotalCredits decimal.Decimal
	TopProducts  []ProductRanking
}

// RecordRepository puerto append-only del ledger: no hay Update ni Delete.
type RecordRepository interface {
	Create(ctx context.Context, r *entity.Record) error
	GetByID(ctx context.Context, id string) (*RecordView, error)
	// List ordena por fecha de creación descendente y luego id descendente.
	List(ctx context.Context, f RecordFilter, limit, offset int) ([]*RecordView, error)
	Count(ctx context.Context, f RecordFilter) (int, error)
	// Stats agrupa por producto: cantidad total desc, empate por id asc; máximo topN filas.
	Stats(ctx context.Context, topN int) (*RecordStats, error)
}
