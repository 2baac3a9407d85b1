package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
)

// catalogService contrato común de los casos de uso de socios, productos y empleados.
type catalogService[C, U, R any] interface {
	List(ctx context.Context, includeInactive bool) ([]R, error)
	Search(ctx context.Context, in dto.SearchRequest) ([]R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	Create(ctx context.Context, in C) (*R, error)
	Update(ctx context.Context, id string, in U) (*R, error)
	Deactivate(ctx context.Context, id string) (*R, error)
}

// catalogMessages textos de respuesta de una entidad.
type catalogMessages struct {
	list, search, found, created, updated, deactivated string
}

// catalogHandler implementa las rutas CRUD compartidas por las entidades de catálogo.
type catalogHandler[C, U, R any] struct {
	svc catalogService[C, U, R]
	msg catalogMessages
}

// list atiende ?search=, ?limit= e ?include_inactive=true.
func (h *catalogHandler[C, U, R]) list(c *fiber.Ctx) error {
	if c.Query("search") != "" {
		out, err := h.svc.Search(c.UserContext(), dto.SearchRequest{
			Term:  c.Query("search"),
			Limit: c.QueryInt("limit", dto.DefaultSearch),
		})
		if err != nil {
			return err
		}
		return respond(c, fiber.StatusOK, h.msg.search, out)
	}
	out, err := h.svc.List(c.UserContext(), c.QueryBool("include_inactive", false))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, h.msg.list, out)
}

func (h *catalogHandler[C, U, R]) get(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, h.msg.found, out)
}

func (h *catalogHandler[C, U, R]) create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return bodyError(err)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, h.msg.created, out)
}

func (h *catalogHandler[C, U, R]) update(c *fiber.Ctx) error {
	var in U
	if err := c.BodyParser(&in); err != nil {
		return bodyError(err)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, h.msg.updated, out)
}

func (h *catalogHandler[C, U, R]) deactivate(c *fiber.Ctx) error {
	out, err := h.svc.Deactivate(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, h.msg.deactivated, out)
}
