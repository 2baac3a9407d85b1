package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
)

// ProductUseCase casos de uso CRUD para productos. Cambiar Credits no altera
// los totales ya registrados.
type ProductUseCase struct {
	repo  repository.ProductRepository
	clock clock.Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, clk clock.Clock) *ProductUseCase {
	return &ProductUseCase{repo: repo, clock: clk}
}

func (uc *ProductUseCase) List(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return mapList(list, toProductResponse), nil
}

func (uc *ProductUseCase) Search(ctx context.Context, in dto.SearchRequest) ([]dto.ProductResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	if in.Term == "" {
		return uc.List(ctx, false)
	}
	list, err := uc.repo.Search(ctx, in.Term, in.Limit)
	if err != nil {
		return nil, err
	}
	return mapList(list, toProductResponse), nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create crea un producto activo. Nombre duplicado devuelve *domain.DuplicateError.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Credits:   *in.Credits,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	set(&p.Name, in.Name)
	set(&p.Credits, in.Credits)
	set(&p.Active, in.Active)
	p.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Deactivate baja lógica idempotente.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Active {
		p.Active = false
		p.UpdatedAt = uc.clock.Now()
		if err := uc.repo.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	out := toProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	if err := dto.ValidateID("id", id); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Credits:   p.Credits,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
