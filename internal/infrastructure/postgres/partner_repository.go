package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

const partnerColumns = `id, name, COALESCE(nickname, ''), COALESCE(dni, ''), COALESCE(passport, ''),
	COALESCE(email, ''), type, active, created_at, updated_at`

// PartnerRepo implementación de PartnerRepository sobre PostgreSQL (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// Create persiste un nuevo socio. DNI repetido -> *domain.DuplicateError.
func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO partners (id, name, nickname, dni, passport, email, type, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, nullIfEmpty(p.Nickname), nullIfEmpty(p.DNI), nullIfEmpty(p.Passport),
		nullIfEmpty(p.Email), string(p.Type), p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

func (r *PartnerRepo) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	return r.getOne(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id)
}

func (r *PartnerRepo) GetActiveByID(ctx context.Context, id string) (*entity.Partner, error) {
	return r.getOne(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1 AND active FOR SHARE`, id)
}

func (r *PartnerRepo) getOne(ctx context.Context, query, id string) (*entity.Partner, error) {
	p, err := scanPartner(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos editables, incluido active.
func (r *PartnerRepo) Update(ctx context.Context, p *entity.Partner) error {
	_, err := r.q.Exec(ctx, `
		UPDATE partners SET name = $2, nickname = $3, dni = $4, passport = $5, email = $6,
			type = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, p.Name, nullIfEmpty(p.Nickname), nullIfEmpty(p.DNI), nullIfEmpty(p.Passport),
		nullIfEmpty(p.Email), string(p.Type), p.Active, p.UpdatedAt,
	)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

func (r *PartnerRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Partner, error) {
	return r.list(ctx, `SELECT `+partnerColumns+` FROM partners WHERE ($1 OR active) ORDER BY name, id`, includeInactive)
}

func (r *PartnerRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Partner, error) {
	return r.list(ctx, `SELECT `+partnerColumns+` FROM partners
		WHERE active AND name ILIKE $1 ESCAPE '\' ORDER BY name, id LIMIT $2`, containsPattern(term), limit)
}

func (r *PartnerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Partner, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPartner(row pgx.Row) (*entity.Partner, error) {
	var p entity.Partner
	var typ string
	if err := row.Scan(&p.ID, &p.Name, &p.Nickname, &p.DNI, &p.Passport, &p.Email, &typ,
		&p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Type = entity.PartnerType(typ)
	return &p, nil
}
