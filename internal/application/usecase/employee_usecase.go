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

// EmployeeUseCase casos de uso CRUD para empleados. Las credenciales de login
// se gestionan desde auth y aquí nunca se modifican.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	clock clock.Clock
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, clk clock.Clock) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, clock: clk}
}

func (uc *EmployeeUseCase) List(ctx context.Context, includeInactive bool) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return mapList(list, toEmployeeResponse), nil
}

func (uc *EmployeeUseCase) Search(ctx context.Context, in dto.SearchRequest) ([]dto.EmployeeResponse, error) {
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
	return mapList(list, toEmployeeResponse), nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Create alta de un empleado sin credenciales.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	e := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Position:  in.Position,
		Schedule:  in.Schedule,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	set(&e.Name, in.Name)
	set(&e.Position, in.Position)
	set(&e.Schedule, in.Schedule)
	set(&e.Active, in.Active)
	e.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Deactivate baja lógica idempotente. Un empleado inactivo tampoco puede iniciar sesión.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Active {
		e.Active = false
		e.UpdatedAt = uc.clock.Now()
		if err := uc.repo.Update(ctx, e); err != nil {
			return nil, err
		}
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

func (uc *EmployeeUseCase) get(ctx context.Context, id string) (*entity.Employee, error) {
	if err := dto.ValidateID("id", id); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return e, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Schedule:  e.Schedule,
		Username:  e.Username,
		Role:      e.Role,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
