package repository

import (
	"context"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
)

// PartnerRepository define el puerto de persistencia para Partner (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no existe la fila.
type PartnerRepository interface {
	Create(ctx context.Context, p *entity.Partner) error
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	// GetActiveByID bloquea la fila en lectura cuando corre dentro de una transacción.
	GetActiveByID(ctx context.Context, id string) (*entity.Partner, error)
	Update(ctx context.Context, p *entity.Partner) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Partner, error)
	// Search busca socios activos cuyo nombre contenga term sin distinguir mayúsculas.
	Search(ctx context.Context, term string, limit int) ([]*entity.Partner, error)
}
