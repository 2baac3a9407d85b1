package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
)

// PrincipalRepository puerto de los principales de login. Hay una implementación
// sobre empleados y otra sobre usuarios; el despliegue elige una.
type PrincipalRepository interface {
	Create(ctx context.Context, p *entity.Principal) error
	GetByID(ctx context.Context, id string) (*entity.Principal, error)
	// GetActiveByUsername ignora los principales inactivos.
	GetActiveByUsername(ctx context.Context, username string) (*entity.Principal, error)
	List(ctx context.Context) ([]*entity.Principal, error)
	Deactivate(ctx context.Context, id string, at time.Time) error
	// Upsert crea o reemplaza credenciales por username (usado por el seed).
	Upsert(ctx context.Context, p *entity.Principal) error
}
