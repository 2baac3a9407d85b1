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

// PartnerUseCase casos de uso CRUD para socios. La baja es lógica.
type PartnerUseCase struct {
	repo  repository.PartnerRepository
	clock clock.Clock
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository, clk clock.Clock) *PartnerUseCase {
	return &PartnerUseCase{repo: repo, clock: clk}
}

// List socios ordenados por nombre; por defecto solo activos.
func (uc *PartnerUseCase) List(ctx context.Context, includeInactive bool) ([]dto.PartnerResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return mapList(list, toPartnerResponse), nil
}

// Search socios activos por nombre. Sin término equivale a List.
func (uc *PartnerUseCase) Search(ctx context.Context, in dto.SearchRequest) ([]dto.PartnerResponse, error) {
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
	return mapList(list, toPartnerResponse), nil
}

// GetByID obtiene un socio, activo o no.
func (uc *PartnerUseCase) GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toPartnerResponse(p)
	return &out, nil
}

// Create da de alta un socio activo. DNI duplicado devuelve *domain.DuplicateError.
func (uc *PartnerUseCase) Create(ctx context.Context, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	p := &entity.Partner{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Nickname:  in.Nickname,
		DNI:       in.DNI,
		Passport:  in.Passport,
		Email:     in.Email,
		Type:      entity.PartnerType(in.Type),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toPartnerResponse(p)
	return &out, nil
}

// Update aplica solo los campos presentes.
func (uc *PartnerUseCase) Update(ctx context.Context, id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	set(&p.Name, in.Name)
	set(&p.Nickname, in.Nickname)
	set(&p.DNI, in.DNI)
	set(&p.Passport, in.Passport)
	set(&p.Email, in.Email)
	if in.Type != nil {
		p.Type = entity.PartnerType(*in.Type)
	}
	set(&p.Active, in.Active)
	p.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toPartnerResponse(p)
	return &out, nil
}

// Deactivate baja lógica; repetirla no falla. Los registros del socio se conservan.
func (uc *PartnerUseCase) Deactivate(ctx context.Context, id string) (*dto.PartnerResponse, error) {
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
	out := toPartnerResponse(p)
	return &out, nil
}

func (uc *PartnerUseCase) get(ctx context.Context, id string) (*entity.Partner, error) {
	if err := dto.ValidateID("id", id); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPartnerNotFound
	}
	return p, nil
}

func toPartnerResponse(p *entity.Partner) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Nickname:  p.Nickname,
		DNI:       p.DNI,
		Passport:  p.Passport,
		Email:     p.Email,
		Type:      string(p.Type),
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
