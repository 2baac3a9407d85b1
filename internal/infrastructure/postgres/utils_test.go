package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsDuplicate(t *testing.T) {
	err := fmt.Errorf("insert partner: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_partners_dni"})

	dup := asDuplicate(err)
	require.Error(t, dup)
	assert.ErrorIs(t, dup, domain.ErrDuplicate)

	var de *domain.DuplicateError
	require.True(t, errors.As(dup, &de))
	assert.Equal(t, "dni", de.Field)

	assert.NoError(t, asDuplicate(&pgconn.PgError{Code: "23503"}))
	assert.NoError(t, asDuplicate(errors.New("conexión perdida")))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%ana%", containsPattern("ana"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestSplitStatements(t *testing.T) {
	sql := "-- comentario\nCREATE TABLE a (id INT);\n\nCREATE INDEX i ON a (id);\n"
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX i ON a (id)"}, splitStatements(sql))
}

func TestMigrationsEmbedded(t *testing.T) {
	content, err := migrationFS.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)
	stmts := splitStatements(string(content))
	assert.NotEmpty(t, stmts)
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS records")
}
