package memory

import (
	"context"

	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo empleados en memoria.
type EmployeeRepo struct {
	s *Store
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.create(e)
}

// create requiere r.s.mu tomado.
func (r *EmployeeRepo) create(e *entity.Employee) error {
	if e.Username != "" {
		for _, other := range r.s.employees {
			if other.Username == e.Username {
				return &domain.DuplicateError{Field: "username"}
			}
		}
	}
	r.s.employees[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmployeeRepo) GetActiveByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil || e == nil || !e.Active {
		return nil, err
	}
	return e, nil
}

// Update modifica los datos de personal; conserva las credenciales.
func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.employees[e.ID]
	if !ok {
		return nil
	}
	cur.Name = e.Name
	cur.Position = e.Position
	cur.Schedule = e.Schedule
	cur.Active = e.Active
	cur.UpdatedAt = e.UpdatedAt
	r.s.employees[e.ID] = cur
	return nil
}

func (r *EmployeeRepo) List(_ context.Context, includeInactive bool) ([]*entity.Employee, error) {
	return r.filter(func(e *entity.Employee) bool { return includeInactive || e.Active }, -1), nil
}

func (r *EmployeeRepo) Search(_ context.Context, term string, limit int) ([]*entity.Employee, error) {
	return r.filter(func(e *entity.Employee) bool { return e.Active && containsFold(e.Name, term) }, limit), nil
}

func (r *EmployeeRepo) filter(keep func(*entity.Employee) bool, limit int) []*entity.Employee {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Employee, 0)
	for _, e := range r.s.employees {
		e := e
		if keep(&e) {
			list = append(list, &e)
		}
	}
	sortByName(list, func(e *entity.Employee) string { return e.Name }, func(e *entity.Employee) string { return e.ID })
	return limitSlice(list, limit)
}
