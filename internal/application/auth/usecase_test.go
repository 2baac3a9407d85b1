package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/infrastructure/memory"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newAuth(t *testing.T) (*AuthUseCase, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Now())
	uc := NewAuthUseCase(memory.NewStore().UserPrincipals(), JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, clk)
	return uc, clk
}

func register(t *testing.T, uc *AuthUseCase, username, role string) *dto.PrincipalResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: username, Password: "secreto1", Name: "Nombre " + username, Role: role,
	})
	require.NoError(t, err)
	return out
}

func TestLogin_Success(t *testing.T) {
	uc, _ := newAuth(t)
	p := register(t, uc, "admin", entity.RoleAdmin)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "  ADMIN ", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, p.ID, out.User.ID)
	assert.Equal(t, "admin", out.User.Role)

	claims, err := NewTokenVerifier(secret).Authorize(out.Token)
	require.NoError(t, err)
	assert.Equal(t, p.ID, claims.PrincipalID)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	register(t, uc, "root", entity.RoleSuperAdmin)
	gone := register(t, uc, "gone", entity.RoleAdmin)
	_, err := uc.DeactivatePrincipal(ctx, "otro", gone.ID)
	require.NoError(t, err)

	cases := []dto.LoginRequest{
		{Username: "root", Password: "incorrecta"},
		{Username: "gone", Password: "secreto1"},
		{Username: "nadie", Password: "secreto1"},
	}
	for _, c := range cases {
		_, err := uc.Login(ctx, c)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, c.Username)
		assert.Equal(t, domain.ErrInvalidCredentials.Error(), err.Error())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DuplicateAndValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	register(t, uc, "maria", "")

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "Maria", Password: "secreto1", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "pepe", Password: "123", Name: "Pepe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "pepe", Password: "secreto1", Name: "Pepe", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DefaultRole(t *testing.T) {
	uc, _ := newAuth(t)
	p := register(t, uc, "maria", "")
	assert.Equal(t, entity.RoleAdmin, p.Role)
	assert.True(t, p.Active)
}

func TestProfileAndList(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	b := register(t, uc, "beto", entity.RoleAdmin)
	register(t, uc, "ana", entity.RoleSuperAdmin)

	prof, err := uc.Profile(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "beto", prof.Username)

	_, err = uc.Profile(ctx, "desconocido")
	assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)

	list, err := uc.ListPrincipals(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ana", list[0].Username)
	assert.Equal(t, "beto", list[1].Username)
}

func TestDeactivatePrincipal(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	root := register(t, uc, "root", entity.RoleSuperAdmin)
	other := register(t, uc, "otro", entity.RoleAdmin)

	_, err := uc.DeactivatePrincipal(ctx, root.ID, root.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.DeactivatePrincipal(ctx, root.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, out.Active)

	out, err = uc.DeactivatePrincipal(ctx, root.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, out.Active, "idempotente")

	_, err = uc.DeactivatePrincipal(ctx, root.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)
}

func TestAuthorize_Roles(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	register(t, uc, "admin", entity.RoleAdmin)
	register(t, uc, "root", entity.RoleSuperAdmin)
	v := NewTokenVerifier(secret)

	adminTok, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "secreto1"})
	require.NoError(t, err)
	rootTok, err := uc.Login(ctx, dto.LoginRequest{Username: "root", Password: "secreto1"})
	require.NoError(t, err)

	_, err = v.Authorize(adminTok.Token, entity.RoleSuperAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, err, domain.ErrSuperAdminRequired)

	_, err = v.Authorize(rootTok.Token, entity.RoleSuperAdmin)
	assert.NoError(t, err)

	_, err = v.Authorize(adminTok.Token, entity.RoleAdmin, entity.RoleSuperAdmin)
	assert.NoError(t, err)

	_, err = v.Authorize("no-es-un-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = NewTokenVerifier("otro").Authorize(rootTok.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthorize_Expired(t *testing.T) {
	uc, clk := newAuth(t)
	register(t, uc, "admin", entity.RoleAdmin)
	clk.Set(time.Now().Add(-2 * time.Hour))

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreto1"})
	require.NoError(t, err)

	_, err = NewTokenVerifier(secret).Authorize(out.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCheckRole(t *testing.T) {
	assert.NoError(t, CheckRole(""))
	assert.ErrorIs(t, CheckRole("", entity.RoleAdmin), domain.ErrMissingRole)
	assert.ErrorIs(t, CheckRole("socio", entity.RoleAdmin, entity.RoleSuperAdmin), domain.ErrAdminRequired)
}
