package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para empleados. Lectura pública, escritura admin.
type EmployeeHandler struct {
	catalogHandler[dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest, dto.EmployeeResponse]
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{catalogHandler[dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest, dto.EmployeeResponse]{
		svc: uc,
		msg: catalogMessages{
			list:        "Lista de empleados",
			search:      "Empleados encontrados",
			found:       "Empleado encontrado",
			created:     "Empleado creado exitosamente",
			updated:     "Empleado actualizado exitosamente",
			deactivated: "Empleado desactivado exitosamente",
		},
	}}
}

// List godoc
// @Summary      Listar o buscar empleados
// @Tags         employees
// @Produce      json
// @Param        search            query  string  false  "Texto a buscar en el nombre"
// @Param        limit             query  int     false  "Máximo de resultados de búsqueda"  default(10)
// @Param        include_inactive  query  bool    false  "Incluir inactivos"
// @Success      200  {object}  dto.APIResponse{data=[]dto.EmployeeResponse}
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error { return h.list(c) }

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.APIResponse{data=dto.EmployeeResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error { return h.get(c) }

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos"
// @Success      201   {object}  dto.APIResponse{data=dto.EmployeeResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error { return h.create(c) }

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.APIResponse{data=dto.EmployeeResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error { return h.update(c) }

// Deactivate godoc
// @Summary      Desactivar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.APIResponse{data=dto.EmployeeResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Deactivate(c *fiber.Ctx) error { return h.deactivate(c) }
