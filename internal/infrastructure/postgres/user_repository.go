package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.PrincipalRepository = (*UserRepo)(nil)

const userColumns = `id, username, name, password_hash, role, active, created_at, updated_at`

// UserRepo principales de login en la tabla users (AUTH_SUBJECT=user).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Username repetido -> *domain.DuplicateError.
func (r *UserRepo) Create(ctx context.Context, p *entity.Principal) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, username, name, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Username, p.Name, p.PasswordHash, p.Role, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.Principal, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepo) GetActiveByUsername(ctx context.Context, username string) (*entity.Principal, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1 AND active`, username)
}

func (r *UserRepo) getOne(ctx context.Context, query, arg string) (*entity.Principal, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return entity.PrincipalFromUser(u), nil
}

// List devuelve todos los usuarios ordenados por username.
func (r *UserRepo) List(ctx context.Context) ([]*entity.Principal, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Principal, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, entity.PrincipalFromUser(u))
	}
	return list, rows.Err()
}

func (r *UserRepo) Deactivate(ctx context.Context, id string, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE users SET active = FALSE, updated_at = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// Upsert crea el usuario o reemplaza nombre, hash y rol si el username ya existe, reactivándolo.
func (r *UserRepo) Upsert(ctx context.Context, p *entity.Principal) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, username, name, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, $6)
		ON CONFLICT (username) DO UPDATE SET
			name = EXCLUDED.name, password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role, active = TRUE, updated_at = EXCLUDED.updated_at`,
		p.ID, p.Username, p.Name, p.PasswordHash, p.Role, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.Role, &u.Active,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
