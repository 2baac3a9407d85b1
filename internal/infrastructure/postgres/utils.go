package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/asoadmin-api/internal/domain"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx; los repos funcionan con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueFields traduce el nombre del constraint al campo expuesto en la API.
var uniqueFields = map[string]string{
	"uq_partners_dni":       "dni",
	"products_name_key":     "name",
	"uq_employees_username": "username",
	"users_username_key":    "username",
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr, true
	}
	return nil, false
}

// asDuplicate convierte una violación de unicidad en *domain.DuplicateError; si no lo es devuelve nil.
func asDuplicate(err error) error {
	pgErr, ok := isUniqueViolation(err)
	if !ok {
		return nil
	}
	field, found := uniqueFields[pgErr.ConstraintName]
	if !found {
		field = pgErr.ConstraintName
	}
	return &domain.DuplicateError{Field: field}
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// containsPattern arma un patrón ILIKE escapando los comodines del término.
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
