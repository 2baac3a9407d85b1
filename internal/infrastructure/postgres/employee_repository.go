package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, name, COALESCE(position, ''), COALESCE(schedule, ''), COALESCE(username, ''),
	COALESCE(password_hash, ''), COALESCE(role, ''), active, created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado; las credenciales son opcionales.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO employees (id, name, position, schedule, username, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.Name, nullIfEmpty(e.Position), nullIfEmpty(e.Schedule), nullIfEmpty(e.Username),
		nullIfEmpty(e.PasswordHash), nullIfEmpty(e.Role), e.Active, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *EmployeeRepo) GetActiveByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 AND active FOR SHARE`, id)
}

func (r *EmployeeRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update modifica los datos de personal; las credenciales no se tocan aquí.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `
		UPDATE employees SET name = $2, position = $3, schedule = $4, active = $5, updated_at = $6
		WHERE id = $1`,
		e.ID, e.Name, nullIfEmpty(e.Position), nullIfEmpty(e.Schedule), e.Active, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE ($1 OR active) ORDER BY name, id`, includeInactive)
}

func (r *EmployeeRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees
		WHERE active AND name ILIKE $1 ESCAPE '\' ORDER BY name, id LIMIT $2`, containsPattern(term), limit)
}

func (r *EmployeeRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Position, &e.Schedule, &e.Username, &e.PasswordHash,
		&e.Role, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
