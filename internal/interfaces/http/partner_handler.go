package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/application/usecase"
)

// PartnerHandler maneja las peticiones HTTP para socios. Lectura pública, escritura admin.
type PartnerHandler struct {
	catalogHandler[dto.CreatePartnerRequest, dto.UpdatePartnerRequest, dto.PartnerResponse]
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{catalogHandler[dto.CreatePartnerRequest, dto.UpdatePartnerRequest, dto.PartnerResponse]{
		svc: uc,
		msg: catalogMessages{
			list:        "Lista de socios",
			search:      "Socios encontrados",
			found:       "Socio encontrado",
			created:     "Socio creado exitosamente",
			updated:     "Socio actualizado exitosamente",
			deactivated: "Socio desactivado exitosamente",
		},
	}}
}

// List godoc
// @Summary      Listar o buscar socios
// @Tags         partners
// @Produce      json
// @Param        search            query  string  false  "Texto a buscar en el nombre"
// @Param        limit             query  int     false  "Máximo de resultados de búsqueda"  default(10)
// @Param        include_inactive  query  bool    false  "Incluir inactivos"
// @Success      200  {object}  dto.APIResponse{data=[]dto.PartnerResponse}
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error { return h.list(c) }

// GetByID godoc
// @Summary      Obtener socio por ID
// @Tags         partners
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.APIResponse{data=dto.PartnerResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error { return h.get(c) }

// Create godoc
// @Summary      Crear socio
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "Datos"
// @Success      201   {object}  dto.APIResponse{data=dto.PartnerResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error { return h.create(c) }

// Update godoc
// @Summary      Actualizar socio
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdatePartnerRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.APIResponse{data=dto.PartnerResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [put]
func (h *PartnerHandler) Update(c *fiber.Ctx) error { return h.update(c) }

// Deactivate godoc
// @Summary      Desactivar socio
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.APIResponse{data=dto.PartnerResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [delete]
func (h *PartnerHandler) Deactivate(c *fiber.Ctx) error { return h.deactivate(c) }
