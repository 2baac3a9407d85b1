package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asoadmin-api/internal/application/auth"
	"github.com/jhoicas/asoadmin-api/internal/domain"
)

// Locals keys para la identidad del principal en Fiber.
const (
	LocalPrincipalID = "principal_id"
	LocalUsername    = "username"
	LocalRole        = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad del principal en c.Locals.
func AuthMiddleware(verifier *auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, CodeMissingToken, "Token de acceso requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, CodeInvalidToken, "Formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, CodeMissingToken, "Token de acceso requerido")
		}
		claims, err := verifier.Authorize(tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, CodeInvalidToken, "Token inválido o expirado")
		}
		c.Locals(LocalPrincipalID, claims.PrincipalID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole exige que el rol del token sea uno de roles. Va después de AuthMiddleware.
//   - 401 MISSING_ROLE → el token no trae rol.
//   - 403 FORBIDDEN    → rol fuera de los permitidos.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := auth.CheckRole(GetRole(c), roles...)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, domain.ErrMissingRole):
			return fail(c, fiber.StatusUnauthorized, CodeMissingRole, "El token no contiene rol")
		default:
			return fail(c, fiber.StatusForbidden, CodeForbidden, capitalize(err.Error()))
		}
	}
}

// GetPrincipalID devuelve el id del principal autenticado.
func GetPrincipalID(c *fiber.Ctx) string {
	return local(c, LocalPrincipalID)
}

// GetRole devuelve el rol del principal autenticado.
func GetRole(c *fiber.Ctx) string {
	return local(c, LocalRole)
}

func local(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
