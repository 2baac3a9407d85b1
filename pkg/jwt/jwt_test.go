package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateParse(t *testing.T) {
	sub := Subject{ID: "p-1", Username: "admin", Name: "Administrador", Role: "admin"}

	tok, err := Generate(testSecret, sub, "asoadmin-api", 60, time.Now())
	require.NoError(t, err)

	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "p-1", claims.PrincipalID)
	assert.Equal(t, "p-1", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Administrador", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "asoadmin-api", claims.Issuer)
}

func TestParse_Expired(t *testing.T) {
	tok, err := Generate(testSecret, Subject{ID: "p-1", Role: "admin"}, "", 1, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := Generate(testSecret, Subject{ID: "p-1", Role: "admin"}, "", 60, time.Now())
	require.NoError(t, err)

	_, err = Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", Subject{ID: "p-1"}, "", 60, time.Now())
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Parse("", "x.y.z")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestParse_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{PrincipalID: "p-1", Role: "super-admin"}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err)
}
