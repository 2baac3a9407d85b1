package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "asoadmin-api", cfg.App.Name)
	assert.Equal(t, 3001, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:5173", cfg.HTTP.CORSOrigin)
	assert.Equal(t, 10080, cfg.JWT.Expiration)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, AuthSubjectEmployee, cfg.Auth.Subject)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("PORT", "4000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port)

	t.Setenv("HTTP_PORT", "5000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.HTTP.Port, "HTTP_PORT tiene prioridad sobre PORT")
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_UnknownEnums(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("AUTH_SUBJECT", "robot")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
	assert.Contains(t, err.Error(), "AUTH_SUBJECT")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "club", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/club?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otra"
	assert.Equal(t, "postgres://otra", c.ConnectionString())
}
