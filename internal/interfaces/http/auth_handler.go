package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asoadmin-api/internal/application/auth"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
)

// AuthHandler maneja login, perfil y gestión de principales.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Login exitoso", out)
}

// Profile godoc
// @Summary      Perfil del principal autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.PrincipalResponse}
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetPrincipalID(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Perfil de usuario", out)
}

// Register godoc
// @Summary      Registrar usuario (solo super-admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password, name, role"
// @Success      201   {object}  dto.APIResponse{data=dto.PrincipalResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Usuario registrado exitosamente", out)
}

// ListUsers godoc
// @Summary      Listar usuarios (solo super-admin)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.PrincipalResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListPrincipals(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Lista de usuarios", out)
}

// DeactivateUser godoc
// @Summary      Desactivar usuario (solo super-admin)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.APIResponse{data=dto.PrincipalResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/users/{id} [delete]
func (h *AuthHandler) DeactivateUser(c *fiber.Ctx) error {
	out, err := h.uc.DeactivatePrincipal(c.UserContext(), GetPrincipalID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Usuario desactivado exitosamente", out)
}
