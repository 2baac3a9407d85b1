package repository

import (
	"context"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetActiveByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Employee, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Employee, error)
}
