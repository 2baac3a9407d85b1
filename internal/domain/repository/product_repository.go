package repository

import (
	"context"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetActiveByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Product, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)
	Count(ctx context.Context) (int, error)
}
