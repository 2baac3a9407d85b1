package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/application/ledger"
)

// RecordHandler maneja el ledger de consumos (protegido).
type RecordHandler struct {
	uc        *ledger.UseCase
	onCreated func()
}

// NewRecordHandler construye el handler. onCreated puede ser nil.
func NewRecordHandler(uc *ledger.UseCase, onCreated func()) *RecordHandler {
	if onCreated == nil {
		onCreated = func() {}
	}
	return &RecordHandler{uc: uc, onCreated: onCreated}
}

// Create godoc
// @Summary      Registrar consumo
// @Description  El total de créditos se calcula en el servidor.
// @Tags         records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecordRequest  true  "partner, product, quantity"
// @Success      201   {object}  dto.APIResponse{data=dto.RecordResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/records [post]
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(err)
	}
	out, err := h.uc.CreateRecord(c.UserContext(), GetPrincipalID(c), in)
	if err != nil {
		return err
	}
	h.onCreated()
	return respond(c, fiber.StatusCreated, "Registro creado exitosamente", out)
}

// List godoc
// @Summary      Historial de registros
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "Página"  default(1)
// @Param        limit    query  int     false  "Tamaño de página"  default(20)
// @Param        date     query  string  false  "Día local YYYY-MM-DD"
// @Param        partner  query  string  false  "ID del socio"
// @Success      200  {object}  dto.APIResponse{data=dto.RecordListResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/records [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	in := dto.ListRecordsRequest{
		PageRequest: pageRequest(c),
		Date:        c.Query("date"),
		PartnerID:   c.Query("partner"),
	}
	out, err := h.uc.ListRecords(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Lista de registros", out)
}

// ListByPartner godoc
// @Summary      Registros de un socio
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        partnerId  path   string  true   "ID del socio"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.APIResponse{data=dto.RecordListResponse}
// @Router       /api/records/partner/{partnerId} [get]
func (h *RecordHandler) ListByPartner(c *fiber.Ctx) error {
	out, err := h.uc.ListPartnerRecords(c.UserContext(), c.Params("partnerId"), pageRequest(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Registros del socio", out)
}

// GetByID godoc
// @Summary      Obtener registro
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.APIResponse{data=dto.RecordResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/records/{id} [get]
func (h *RecordHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Registro encontrado", out)
}

// Stats godoc
// @Summary      Estadísticas del ledger
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.RecordStatsDTO}
// @Router       /api/records/stats [get]
func (h *RecordHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Estadísticas de registros", out)
}

// Receipt godoc
// @Summary      Comprobante PDF del registro
// @Tags         records
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/records/{id}/receipt [get]
func (h *RecordHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="registro-`+id+`.pdf"`)
	return c.Status(fiber.StatusOK).Send(pdf)
}

func pageRequest(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:  c.QueryInt("page", dto.DefaultPage),
		Limit: c.QueryInt("limit", dto.DefaultLimit),
	}
}
