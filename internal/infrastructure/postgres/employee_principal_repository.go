package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.PrincipalRepository = (*EmployeePrincipalRepo)(nil)

// EmployeePrincipalRepo principales de login sobre la tabla employees (AUTH_SUBJECT=employee).
// Solo considera filas con username.
type EmployeePrincipalRepo struct {
	q         Querier
	employees *EmployeeRepo
}

func NewEmployeePrincipalRepository(q Querier) *EmployeePrincipalRepo {
	return &EmployeePrincipalRepo{q: q, employees: NewEmployeeRepository(q)}
}

func (r *EmployeePrincipalRepo) Create(ctx context.Context, p *entity.Principal) error {
	return r.employees.Create(ctx, employeeFromPrincipal(p))
}

func (r *EmployeePrincipalRepo) GetByID(ctx context.Context, id string) (*entity.Principal, error) {
	e, err := r.employees.getOne(ctx, `SELECT `+employeeColumns+` FROM employees
		WHERE id = $1 AND username IS NOT NULL`, id)
	if err != nil || e == nil {
		return nil, err
	}
	return entity.PrincipalFromEmployee(e), nil
}

func (r *EmployeePrincipalRepo) GetActiveByUsername(ctx context.Context, username string) (*entity.Principal, error) {
	e, err := r.employees.getOne(ctx, `SELECT `+employeeColumns+` FROM employees
		WHERE username = $1 AND active AND password_hash IS NOT NULL`, username)
	if err != nil || e == nil {
		return nil, err
	}
	return entity.PrincipalFromEmployee(e), nil
}

func (r *EmployeePrincipalRepo) List(ctx context.Context) ([]*entity.Principal, error) {
	list, err := r.employees.list(ctx, `SELECT `+employeeColumns+` FROM employees
		WHERE username IS NOT NULL ORDER BY username`)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Principal, 0, len(list))
	for _, e := range list {
		out = append(out, entity.PrincipalFromEmployee(e))
	}
	return out, nil
}

func (r *EmployeePrincipalRepo) Deactivate(ctx context.Context, id string, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE employees SET active = FALSE, updated_at = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}
	return nil
}

// Upsert crea o actualiza el empleado con ese username y lo reactiva.
func (r *EmployeePrincipalRepo) Upsert(ctx context.Context, p *entity.Principal) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO employees (id, name, position, schedule, username, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8, $8)
		ON CONFLICT (username) WHERE username IS NOT NULL DO UPDATE SET
			name = EXCLUDED.name, position = EXCLUDED.position, password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role, active = TRUE, updated_at = EXCLUDED.updated_at`,
		p.ID, p.Name, nullIfEmpty(p.Position), nullIfEmpty(p.Schedule), p.Username,
		p.PasswordHash, p.Role, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert employee: %w", err)
	}
	return nil
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
