package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var (
	_ repository.PrincipalRepository = (*EmployeePrincipalRepo)(nil)
	_ repository.PrincipalRepository = (*UserRepo)(nil)
)

// EmployeePrincipalRepo principales sobre empleados con username.
type EmployeePrincipalRepo struct {
	s *Store
}

func (r *EmployeePrincipalRepo) Create(_ context.Context, p *entity.Principal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.Employees.create(employeeFromPrincipal(p))
}

func (r *EmployeePrincipalRepo) GetByID(_ context.Context, id string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.employees[id]
	if !ok || e.Username == "" {
		return nil, nil
	}
	return entity.PrincipalFromEmployee(&e), nil
}

func (r *EmployeePrincipalRepo) GetActiveByUsername(_ context.Context, username string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.employees {
		if e.Username == username && e.Active && e.HasCredentials() {
			return entity.PrincipalFromEmployee(&e), nil
		}
	}
	return nil, nil
}

func (r *EmployeePrincipalRepo) List(_ context.Context) ([]*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Principal, 0)
	for _, e := range r.s.employees {
		if e.Username != "" {
			list = append(list, entity.PrincipalFromEmployee(&e))
		}
	}
	sortByUsername(list)
	return list, nil
}

func (r *EmployeePrincipalRepo) Deactivate(_ context.Context, id string, at time.Time) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.employees[id]; ok {
		e.Active = false
		e.UpdatedAt = at
		r.s.employees[id] = e
	}
	return nil
}

func (r *EmployeePrincipalRepo) Upsert(_ context.Context, p *entity.Principal) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, e := range r.s.employees {
		if e.Username == p.Username {
			e.Name = p.Name
			e.Position = p.Position
			e.PasswordHash = p.PasswordHash
			e.Role = p.Role
			e.Active = true
			e.UpdatedAt = p.UpdatedAt
			r.s.employees[id] = e
			return nil
		}
	}
	e := employeeFromPrincipal(p)
	e.Active = true
	r.s.employees[e.ID] = *e
	return nil
}

// UserRepo principales sobre la colección de usuarios.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, p *entity.Principal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == p.Username {
			return &domain.DuplicateError{Field: "username"}
		}
	}
	r.s.users[p.ID] = userFromPrincipal(p)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return entity.PrincipalFromUser(&u), nil
}

func (r *UserRepo) GetActiveByUsername(_ context.Context, username string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username && u.Active {
			return entity.PrincipalFromUser(&u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Principal, 0, len(r.s.users))
	for _, u := range r.s.users {
		list = append(list, entity.PrincipalFromUser(&u))
	}
	sortByUsername(list)
	return list, nil
}

func (r *UserRepo) Deactivate(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.Active = false
		u.UpdatedAt = at
		r.s.users[id] = u
	}
	return nil
}

func (r *UserRepo) Upsert(_ context.Context, p *entity.Principal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, u := range r.s.users {
		if u.Username == p.Username {
			u.Name = p.Name
			u.PasswordHash = p.PasswordHash
			u.Role = p.Role
			u.Active = true
			u.UpdatedAt = p.UpdatedAt
			r.s.users[id] = u
			return nil
		}
	}
	u := userFromPrincipal(p)
	u.Active = true
	r.s.users[u.ID] = u
	return nil
}

func sortByUsername(list []*entity.Principal) {
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
}

func employeeFromPrincipal(p *entity.Principal) *entity.Employee {
	return &entity.Employee{
		ID:           p.ID,
		Name:         p.Name,
		Position:     p.Position,
		Schedule:     p.Schedule,
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
		Role:         p.Role,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func userFromPrincipal(p *entity.Principal) entity.User {
	return entity.User{
		ID:           p.ID,
		Username:     p.Username,
		Name:         p.Name,
		PasswordHash: p.PasswordHash,
		Role:         p.Role,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
