package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
	"github.com/jhoicas/asoadmin-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el principal no existe para igualar el tiempo de respuesta.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("asoadmin-dummy-password"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: login, registro y gestión de principales.
type AuthUseCase struct {
	principals repository.PrincipalRepository
	jwtCfg     JWTConfig
	clock      clock.Clock
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(principals repository.PrincipalRepository, jwtCfg JWTConfig, clk clock.Clock) *AuthUseCase {
	return &AuthUseCase{principals: principals, jwtCfg: jwtCfg, clock: clk}
}

// Login verifica usuario/password entre los principales activos y genera el JWT.
// Usuario inexistente, inactivo o password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Username = dto.NormalizeUsername(in.Username)
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	p, err := uc.principals.GetActiveByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	hash := dummyHash
	if p != nil {
		hash = []byte(p.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(in.Password)); err != nil || p == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		ID:       p.ID,
		Username: p.Username,
		Name:     p.Name,
		Role:     p.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toPrincipalResponse(p)}, nil
}

// Profile devuelve el principal autenticado.
func (uc *AuthUseCase) Profile(ctx context.Context, principalID string) (*dto.PrincipalResponse, error) {
	p, err := uc.principals.GetByID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, domain.ErrPrincipalNotFound
	}
	out := toPrincipalResponse(p)
	return &out, nil
}

// Register crea un principal de login con password hasheado (bcrypt).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.PrincipalResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	p := &entity.Principal{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
		Position:     in.Position,
		Schedule:     in.Schedule,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.principals.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toPrincipalResponse(p)
	return &out, nil
}

// ListPrincipals todos los principales de login ordenados por username.
func (uc *AuthUseCase) ListPrincipals(ctx context.Context) ([]dto.PrincipalResponse, error) {
	list, err := uc.principals.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PrincipalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPrincipalResponse(p))
	}
	return out, nil
}

// DeactivatePrincipal baja lógica de un principal. Un principal no puede desactivarse a sí mismo.
func (uc *AuthUseCase) DeactivatePrincipal(ctx context.Context, actingID, id string) (*dto.PrincipalResponse, error) {
	if err := dto.ValidateID("id", id); err != nil {
		return nil, err
	}
	if actingID == id {
		return nil, domain.NewValidationError("id", "no puedes desactivar tu propio usuario")
	}
	p, err := uc.principals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPrincipalNotFound
	}
	if p.Active {
		now := uc.clock.Now()
		if err := uc.principals.Deactivate(ctx, id, now); err != nil {
			return nil, err
		}
		p.Active = false
		p.UpdatedAt = now
	}
	out := toPrincipalResponse(p)
	return &out, nil
}

func toPrincipalResponse(p *entity.Principal) dto.PrincipalResponse {
	return dto.PrincipalResponse{
		ID:        p.ID,
		Username:  p.Username,
		Name:      p.Name,
		Role:      p.Role,
		Position:  p.Position,
		Schedule:  p.Schedule,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

// TokenVerifier valida tokens y roles sin tocar el store.
type TokenVerifier struct {
	secret string
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: secret}
}

// Authorize verifica firma y expiración y, si se piden roles, que el rol del token sea uno de ellos.
func (v *TokenVerifier) Authorize(token string, roles ...string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(v.secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if err := CheckRole(claims.Role, roles...); err != nil {
		return nil, err
	}
	return claims, nil
}

// CheckRole sin roles requeridos basta con estar autenticado.
func CheckRole(role string, roles ...string) error {
	if len(roles) == 0 {
		return nil
	}
	if role == "" {
		return domain.ErrMissingRole
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	if len(roles) == 1 && roles[0] == entity.RoleSuperAdmin {
		return domain.ErrSuperAdminRequired
	}
	return domain.ErrAdminRequired
}
